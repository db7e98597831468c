package repository

import (
	"context"

	"github.com/favourop/portfolio-backend/internal/content/domain"
)

// Counts holds per-collection record totals for the dashboard stats view.
type Counts struct {
	Projects   int `json:"projects"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
}

// Store is the persistence adapter contract. Every method is a single
// round trip to the backing store; list results are ordered newest first by
// creation time. Inserts assign the record id and both timestamps, updates
// replace the editable field set and recompute updatedAt. Missing ids
// surface as domain.ErrNotFound, everything else as the driver error.
type Store interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	InsertProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]domain.Skill, error)
	GetSkill(ctx context.Context, id string) (*domain.Skill, error)
	InsertSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, id string, in domain.SkillInput) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]domain.Experience, error)
	GetExperience(ctx context.Context, id string) (*domain.Experience, error)
	InsertExperience(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error)
	UpdateExperience(ctx context.Context, id string, in domain.ExperienceInput) (*domain.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	Counts(ctx context.Context) (*Counts, error)
}
