package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultImage is stored when a project is created or updated without one.
const DefaultImage = "/placeholder.svg?height=600&width=800"

// MinDescriptionLen applies to every entity's description field.
const MinDescriptionLen = 10

// StringList decodes either a JSON array of strings or a single
// comma-separated string. Either way the entries are trimmed and empty
// entries dropped, so the persisted shape is always a clean sequence.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalizeList(items)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("expected string array or comma-separated string")
	}
	*l = normalizeList(strings.Split(joined, ","))
	return nil
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProjectInput is the untrusted field set accepted by project create and
// update calls.
type ProjectInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Tags         StringList `json:"tags"`
	Technologies StringList `json:"technologies"`
	Image        string     `json:"image"`
	URL          string     `json:"url"`
	GitHubURL    string     `json:"github_url"`
	Featured     bool       `json:"featured"`
}

func (in *ProjectInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if len(strings.TrimSpace(in.Description)) < MinDescriptionLen {
		return fmt.Errorf("%w: description must be at least %d characters", ErrInvalid, MinDescriptionLen)
	}
	return nil
}

// Normalize fills defaults: absent lists become empty sequences and an
// absent image becomes the placeholder.
func (in *ProjectInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Tags == nil {
		in.Tags = StringList{}
	}
	if in.Technologies == nil {
		in.Technologies = StringList{}
	}
	if strings.TrimSpace(in.Image) == "" {
		in.Image = DefaultImage
	}
}

// SkillInput is the untrusted field set accepted by skill create and update
// calls. An out-of-range level is clamped rather than rejected, matching
// the range the admin slider produces.
type SkillInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies StringList `json:"technologies"`
	Category     string     `json:"category"`
	Level        int        `json:"level"`
}

func (in *SkillInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if len(strings.TrimSpace(in.Description)) < MinDescriptionLen {
		return fmt.Errorf("%w: description must be at least %d characters", ErrInvalid, MinDescriptionLen)
	}
	if !ValidCategory(in.Category) {
		return fmt.Errorf("%w: category must be one of %s", ErrInvalid, strings.Join(Categories, ", "))
	}
	return nil
}

func (in *SkillInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Technologies == nil {
		in.Technologies = StringList{}
	}
	if in.Level < 0 {
		in.Level = 0
	}
	if in.Level > 100 {
		in.Level = 100
	}
}

// ExperienceInput is the untrusted field set accepted by experience create
// and update calls.
type ExperienceInput struct {
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Period      string     `json:"period"`
	Duration    string     `json:"duration"`
	Description string     `json:"description"`
	Skills      StringList `json:"skills"`
	Current     bool       `json:"current"`
}

func (in *ExperienceInput) Validate() error {
	if strings.TrimSpace(in.Role) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalid)
	}
	if strings.TrimSpace(in.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalid)
	}
	if len(strings.TrimSpace(in.Description)) < MinDescriptionLen {
		return fmt.Errorf("%w: description must be at least %d characters", ErrInvalid, MinDescriptionLen)
	}
	return nil
}

func (in *ExperienceInput) Normalize() {
	in.Role = strings.TrimSpace(in.Role)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)
	if in.Skills == nil {
		in.Skills = StringList{}
	}
}
