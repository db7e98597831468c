package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	t.Run("accepts a JSON array", func(t *testing.T) {
		var l StringList
		err := json.Unmarshal([]byte(`["react","go"]`), &l)
		require.NoError(t, err)
		assert.Equal(t, StringList{"react", "go"}, l)
	})

	t.Run("splits a comma-separated string and trims entries", func(t *testing.T) {
		var l StringList
		err := json.Unmarshal([]byte(`"React, Next.js ,  TypeScript"`), &l)
		require.NoError(t, err)
		assert.Equal(t, StringList{"React", "Next.js", "TypeScript"}, l)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		var l StringList
		err := json.Unmarshal([]byte(`"go,, ,redis,"`), &l)
		require.NoError(t, err)
		assert.Equal(t, StringList{"go", "redis"}, l)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var l StringList
		err := json.Unmarshal([]byte(`42`), &l)
		assert.Error(t, err)
	})
}

func TestProjectInput_Validate(t *testing.T) {
	valid := ProjectInput{Title: "Portfolio", Description: "A personal portfolio site"}
	require.NoError(t, valid.Validate())

	t.Run("requires a title", func(t *testing.T) {
		in := valid
		in.Title = "   "
		err := in.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("requires a minimum description", func(t *testing.T) {
		in := valid
		in.Description = "too short"
		err := in.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestProjectInput_Normalize(t *testing.T) {
	in := ProjectInput{Title: "  Portfolio  ", Description: " A personal portfolio site "}
	in.Normalize()

	assert.Equal(t, "Portfolio", in.Title)
	assert.Equal(t, "A personal portfolio site", in.Description)
	assert.Equal(t, StringList{}, in.Tags)
	assert.Equal(t, StringList{}, in.Technologies)
	assert.Equal(t, DefaultImage, in.Image)
}

func TestSkillInput_Validate(t *testing.T) {
	valid := SkillInput{Title: "Backend", Description: "APIs and data layers", Category: "backend", Level: 80}
	require.NoError(t, valid.Validate())

	t.Run("rejects unknown categories", func(t *testing.T) {
		in := valid
		in.Category = "devops"
		err := in.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestSkillInput_Normalize_ClampsLevel(t *testing.T) {
	in := SkillInput{Title: "Backend", Description: "APIs and data layers", Category: "backend", Level: 150}
	in.Normalize()
	assert.Equal(t, 100, in.Level)

	in.Level = -5
	in.Normalize()
	assert.Equal(t, 0, in.Level)
}

func TestExperienceInput_Validate(t *testing.T) {
	valid := ExperienceInput{Role: "Developer", Company: "Brightwave", Description: "Built web products"}
	require.NoError(t, valid.Validate())

	t.Run("requires role and company", func(t *testing.T) {
		in := valid
		in.Role = ""
		assert.ErrorIs(t, in.Validate(), ErrInvalid)

		in = valid
		in.Company = ""
		assert.ErrorIs(t, in.Validate(), ErrInvalid)
	})
}
