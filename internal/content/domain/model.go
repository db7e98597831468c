package domain

import "time"

// Project is a portfolio project entry. It is intentionally
// storage-agnostic and used across repository and HTTP layers; adapters map
// it onto their own column/field conventions.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Technologies []string  `json:"technologies"`
	Image        string    `json:"image"`
	URL          string    `json:"url,omitempty"`
	GitHubURL    string    `json:"github_url,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Skill is a skill card shown on the portfolio, grouped by category with a
// 0-100 proficiency level.
type Skill struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Experience is a single employment entry. Period and Duration are
// free-text date ranges as entered by the operator.
type Experience struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Period      string    `json:"period"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Current     bool      `json:"current"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Categories a skill may belong to.
var Categories = []string{"frontend", "backend", "mobile", "design", "ai"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
