package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favourop/portfolio-backend/config"
)

func testProfile() *Profile {
	p := &Profile{Name: "Favour Opia"}
	p.About.Description = []string{"Full-stack developer."}
	p.About.Skills = []string{"Go", "React"}
	p.Skills = []ProfileSkill{
		{Title: "Backend Development", Description: "APIs and data layers", Technologies: []string{"Go", "PostgreSQL"}},
	}
	p.Projects = []ProfileProject{
		{Title: "Portfolio Platform", Description: "Portfolio with admin dashboard", Technologies: []string{"Go"}, URL: "https://favouropia.dev"},
	}
	p.Experience = []ProfileExperience{
		{Role: "Full-Stack Developer", Company: "Brightwave Labs", Period: "2024 - Present", Duration: "1+ year", Location: "Remote", Description: "Building web products", Skills: []string{"Go"}},
	}
	return p
}

// fakeGenerateServer returns an upstream that answers every generate call
// with the given status and text, capturing the last prompt it received.
func fakeGenerateServer(t *testing.T, status int, text string) (*httptest.Server, *string) {
	t.Helper()

	var lastPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		lastPrompt = req.Prompt

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"generations": []map[string]string{{"text": text}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &lastPrompt
}

func newTestService(t *testing.T, status int, text string) (*Service, *string) {
	t.Helper()
	srv, prompt := fakeGenerateServer(t, status, text)
	client := NewClient(config.AssistantConfig{BaseURL: srv.URL, APIKey: "test-key", Model: "command-r-plus"})
	return NewService(testProfile(), client), prompt
}

func TestAsk_ReturnsGeneratedAnswer(t *testing.T) {
	svc, _ := newTestService(t, http.StatusOK, "  I mainly work with Go and React.  ")

	answer := svc.Ask(context.Background(), "What do you work with?", nil)
	assert.Equal(t, "I mainly work with Go and React.", answer)
}

func TestAsk_PromptContainsPortfolioData(t *testing.T) {
	svc, prompt := newTestService(t, http.StatusOK, "I mainly work with Go and React.")

	history := []Message{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
		{Role: "user", Content: "second question"},
		{Role: "assistant", Content: "second answer"},
	}
	svc.Ask(context.Background(), "Tell me about your experience", history)

	require.NotEmpty(t, *prompt)
	assert.Contains(t, *prompt, "Favour Opia")
	assert.Contains(t, *prompt, "Portfolio Platform")
	assert.Contains(t, *prompt, "Brightwave Labs")
	assert.Contains(t, *prompt, "Current question: Tell me about your experience")

	t.Run("history is capped to the trailing window", func(t *testing.T) {
		assert.NotContains(t, *prompt, "first question")
		assert.Contains(t, *prompt, "second question")
		assert.Contains(t, *prompt, "second answer")
	})
}

func TestAsk_UpstreamFailureFallsBack(t *testing.T) {
	svc, _ := newTestService(t, http.StatusInternalServerError, "")

	answer := svc.Ask(context.Background(), "Anything?", nil)
	assert.Contains(t, answer, "technical difficulties")
	assert.Contains(t, answer, "Favour")
}

func TestAsk_ShortAnswerIsRejected(t *testing.T) {
	svc, _ := newTestService(t, http.StatusOK, " ok ")

	answer := svc.Ask(context.Background(), "Anything?", nil)
	assert.Contains(t, answer, "rephrase")
}

func TestClient_Generate(t *testing.T) {
	t.Run("sends auth header and model", func(t *testing.T) {
		var gotAuth, gotModel string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			var req struct {
				Model string `json:"model"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			gotModel = req.Model
			_ = json.NewEncoder(w).Encode(map[string]any{
				"generations": []map[string]string{{"text": "hello there"}},
			})
		}))
		defer srv.Close()

		client := NewClient(config.AssistantConfig{BaseURL: srv.URL, APIKey: "secret", Model: "command-r-plus"})
		text, err := client.Generate(context.Background(), "hi")
		require.NoError(t, err)
		assert.Equal(t, "hello there", text)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "command-r-plus", gotModel)
	})

	t.Run("empty generations is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"generations": []any{}})
		}))
		defer srv.Close()

		client := NewClient(config.AssistantConfig{BaseURL: srv.URL, APIKey: "secret", Model: "command-r-plus"})
		_, err := client.Generate(context.Background(), "hi")
		assert.Error(t, err)
	})
}

func TestLoadProfile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfile("does-not-exist.json")
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"about":{}}`), 0o644))
		_, err := LoadProfile(path)
		assert.Error(t, err)
	})

	t.Run("valid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"Favour Opia","about":{"skills":["Go"]}}`), 0o644))
		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "Favour Opia", p.Name)
		assert.Equal(t, []string{"Go"}, p.About.Skills)
	})
}
