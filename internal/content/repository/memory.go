package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/favourop/portfolio-backend/internal/content/domain"
)

// MemoryStore keeps all collections in process memory. It backs tests and
// the "memory" STORE_BACKEND used for local development without a database.
type MemoryStore struct {
	mu         sync.RWMutex
	projects   map[string]domain.Project
	skills     map[string]domain.Skill
	experience map[string]domain.Experience
	seq        map[string]int64
	nextSeq    int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects:   make(map[string]domain.Project),
		skills:     make(map[string]domain.Skill),
		experience: make(map[string]domain.Experience),
		seq:        make(map[string]int64),
	}
}

var _ Store = (*MemoryStore)(nil)

// stamp records insertion order so list results stay newest-first even when
// two records share a creation timestamp.
func (s *MemoryStore) stamp(id string) {
	s.nextSeq++
	s.seq[id] = s.nextSeq
}

func (s *MemoryStore) newer(aID string, aCreated time.Time, bID string, bCreated time.Time) bool {
	if !aCreated.Equal(bCreated) {
		return aCreated.After(bCreated)
	}
	return s.seq[aID] > s.seq[bID]
}

func (s *MemoryStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) InsertProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p := domain.Project{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Tags:         in.Tags,
		Technologies: in.Technologies,
		Image:        in.Image,
		URL:          in.URL,
		GitHubURL:    in.GitHubURL,
		Featured:     in.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.projects[p.ID] = p
	s.stamp(p.ID)
	return &p, nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Title = in.Title
	p.Description = in.Description
	p.Tags = in.Tags
	p.Technologies = in.Technologies
	p.Image = in.Image
	p.URL = in.URL
	p.GitHubURL = in.GitHubURL
	p.Featured = in.Featured
	p.UpdatedAt = time.Now().UTC()
	s.projects[id] = p
	return &p, nil
}

func (s *MemoryStore) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sk, ok := s.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sk, nil
}

func (s *MemoryStore) InsertSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sk := domain.Skill{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		Category:     in.Category,
		Level:        in.Level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.skills[sk.ID] = sk
	s.stamp(sk.ID)
	return &sk, nil
}

func (s *MemoryStore) UpdateSkill(ctx context.Context, id string, in domain.SkillInput) (*domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk, ok := s.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	sk.Title = in.Title
	sk.Description = in.Description
	sk.Technologies = in.Technologies
	sk.Category = in.Category
	sk.Level = in.Level
	sk.UpdatedAt = time.Now().UTC()
	s.skills[id] = sk
	return &sk, nil
}

func (s *MemoryStore) DeleteSkill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.skills, id)
	return nil
}

func (s *MemoryStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Experience, 0, len(s.experience))
	for _, e := range s.experience {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.experience[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) InsertExperience(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	e := domain.Experience{
		ID:          uuid.NewString(),
		Role:        in.Role,
		Company:     in.Company,
		Location:    in.Location,
		Period:      in.Period,
		Duration:    in.Duration,
		Description: in.Description,
		Skills:      in.Skills,
		Current:     in.Current,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.experience[e.ID] = e
	s.stamp(e.ID)
	return &e, nil
}

func (s *MemoryStore) UpdateExperience(ctx context.Context, id string, in domain.ExperienceInput) (*domain.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.experience[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.Role = in.Role
	e.Company = in.Company
	e.Location = in.Location
	e.Period = in.Period
	e.Duration = in.Duration
	e.Description = in.Description
	e.Skills = in.Skills
	e.Current = in.Current
	e.UpdatedAt = time.Now().UTC()
	s.experience[id] = e
	return &e, nil
}

func (s *MemoryStore) DeleteExperience(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.experience[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.experience, id)
	return nil
}

func (s *MemoryStore) Counts(ctx context.Context) (*Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Counts{
		Projects:   len(s.projects),
		Skills:     len(s.skills),
		Experience: len(s.experience),
	}, nil
}
