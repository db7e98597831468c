package service

import (
	"context"

	"github.com/favourop/portfolio-backend/internal/content/domain"
	"github.com/favourop/portfolio-backend/internal/content/repository"
)

// ContentService validates and normalizes untrusted input before it
// reaches the persistence adapter. Nothing is written when validation
// fails.
type ContentService struct {
	store repository.Store
}

// NewContentService creates a new content service
func NewContentService(store repository.Store) *ContentService {
	return &ContentService{store: store}
}

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *ContentService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *ContentService) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.InsertProject(ctx, in)
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.UpdateProject(ctx, id, in)
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.store.ListSkills(ctx)
}

func (s *ContentService) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	return s.store.GetSkill(ctx, id)
}

func (s *ContentService) CreateSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.InsertSkill(ctx, in)
}

func (s *ContentService) UpdateSkill(ctx context.Context, id string, in domain.SkillInput) (*domain.Skill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.UpdateSkill(ctx, id, in)
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	return s.store.DeleteSkill(ctx, id)
}

func (s *ContentService) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	return s.store.ListExperience(ctx)
}

func (s *ContentService) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	return s.store.GetExperience(ctx, id)
}

func (s *ContentService) CreateExperience(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.InsertExperience(ctx, in)
}

func (s *ContentService) UpdateExperience(ctx context.Context, id string, in domain.ExperienceInput) (*domain.Experience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.store.UpdateExperience(ctx, id, in)
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	return s.store.DeleteExperience(ctx, id)
}

func (s *ContentService) Counts(ctx context.Context) (*repository.Counts, error) {
	return s.store.Counts(ctx)
}
