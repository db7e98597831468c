package assistant

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is the static portfolio document the assistant answers from. It
// is loaded once at startup; the assistant never reads the content store.
type Profile struct {
	Name  string `json:"name"`
	About struct {
		Description []string `json:"description"`
		Skills      []string `json:"skills"`
	} `json:"about"`
	Skills []ProfileSkill `json:"skills"`

	Projects   []ProfileProject    `json:"projects"`
	Experience []ProfileExperience `json:"experience"`
}

type ProfileSkill struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type ProfileProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	GitHubURL    string   `json:"github_url"`
}

type ProfileExperience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// LoadProfile reads the portfolio document from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile is missing a name")
	}
	return &p, nil
}
