package repository

import (
	"context"
	"fmt"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/favourop/portfolio-backend/config"
	"github.com/favourop/portfolio-backend/internal/content/domain"
)

const (
	projectsTable   = "projects"
	skillsTable     = "skills"
	experienceTable = "experience"
)

// SurrealStore persists the content collections in SurrealDB. Documents
// keep the camelCase field names of the canonical wire shape; record ids are
// generated by the database and exposed as their text part.
type SurrealStore struct {
	db *surrealdb.DB
}

var _ Store = (*SurrealStore)(nil)

// NewSurrealStore connects, selects the namespace/database and signs in.
// The connection is opened once and reused for every request.
func NewSurrealStore(ctx context.Context, cfg config.SurrealConfig) (*SurrealStore, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}
	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}
	token, err := db.SignIn(ctx, &surrealdb.Auth{Username: cfg.Username, Password: cfg.Password})
	if err != nil {
		return nil, fmt.Errorf("signin surrealdb: %w", err)
	}
	if err := db.Authenticate(ctx, token); err != nil {
		return nil, fmt.Errorf("authenticate surrealdb: %w", err)
	}
	return &SurrealStore{db: db}, nil
}

type projectDoc struct {
	ID           *models.RecordID       `json:"id,omitempty"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Tags         []string               `json:"tags"`
	Technologies []string               `json:"technologies"`
	Image        string                 `json:"image"`
	URL          string                 `json:"url,omitempty"`
	GitHubURL    string                 `json:"github_url,omitempty"`
	Featured     bool                   `json:"featured"`
	CreatedAt    models.CustomDateTime  `json:"createdAt"`
	UpdatedAt    *models.CustomDateTime `json:"updatedAt,omitempty"`
}

type skillDoc struct {
	ID           *models.RecordID       `json:"id,omitempty"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Technologies []string               `json:"technologies"`
	Category     string                 `json:"category"`
	Level        int                    `json:"level"`
	CreatedAt    models.CustomDateTime  `json:"createdAt"`
	UpdatedAt    *models.CustomDateTime `json:"updatedAt,omitempty"`
}

type experienceDoc struct {
	ID          *models.RecordID       `json:"id,omitempty"`
	Role        string                 `json:"role"`
	Company     string                 `json:"company"`
	Location    string                 `json:"location"`
	Period      string                 `json:"period"`
	Duration    string                 `json:"duration"`
	Description string                 `json:"description"`
	Skills      []string               `json:"skills"`
	Current     bool                   `json:"current"`
	CreatedAt   models.CustomDateTime  `json:"createdAt"`
	UpdatedAt   *models.CustomDateTime `json:"updatedAt,omitempty"`
}

// rows unwraps the first statement result of a query response.
func rows[T any](res *[]surrealdb.QueryResult[[]T], err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, fmt.Errorf("empty query response")
	}
	return (*res)[0].Result, nil
}

func recordText(id *models.RecordID) string {
	if id == nil {
		return ""
	}
	return fmt.Sprint(id.ID)
}

func timeOf(dt *models.CustomDateTime, fallback models.CustomDateTime) time.Time {
	if dt == nil {
		return fallback.Time
	}
	return dt.Time
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:           recordText(d.ID),
		Title:        d.Title,
		Description:  d.Description,
		Tags:         d.Tags,
		Technologies: d.Technologies,
		Image:        d.Image,
		URL:          d.URL,
		GitHubURL:    d.GitHubURL,
		Featured:     d.Featured,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    timeOf(d.UpdatedAt, d.CreatedAt),
	}
}

func (d skillDoc) toDomain() domain.Skill {
	return domain.Skill{
		ID:           recordText(d.ID),
		Title:        d.Title,
		Description:  d.Description,
		Technologies: d.Technologies,
		Category:     d.Category,
		Level:        d.Level,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    timeOf(d.UpdatedAt, d.CreatedAt),
	}
}

func (d experienceDoc) toDomain() domain.Experience {
	return domain.Experience{
		ID:          recordText(d.ID),
		Role:        d.Role,
		Company:     d.Company,
		Location:    d.Location,
		Period:      d.Period,
		Duration:    d.Duration,
		Description: d.Description,
		Skills:      d.Skills,
		Current:     d.Current,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   timeOf(d.UpdatedAt, d.CreatedAt),
	}
}

func now() models.CustomDateTime {
	return models.CustomDateTime{Time: time.Now().UTC()}
}

func (s *SurrealStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	docs, err := rows(surrealdb.Query[[]projectDoc](ctx, s.db,
		"SELECT * FROM projects ORDER BY createdAt DESC", nil))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *SurrealStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	docs, err := rows(surrealdb.Query[[]projectDoc](ctx, s.db,
		"SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": projectsTable, "id": id}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 || docs[0].ID == nil {
		return nil, domain.ErrNotFound
	}
	p := docs[0].toDomain()
	return &p, nil
}

func (s *SurrealStore) InsertProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]projectDoc](ctx, s.db,
		"CREATE type::table($tb) CONTENT $content",
		map[string]any{
			"tb": projectsTable,
			"content": projectDoc{
				Title:        in.Title,
				Description:  in.Description,
				Tags:         in.Tags,
				Technologies: in.Technologies,
				Image:        in.Image,
				URL:          in.URL,
				GitHubURL:    in.GitHubURL,
				Featured:     in.Featured,
				CreatedAt:    ts,
				UpdatedAt:    &ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("create returned no record")
	}
	p := docs[0].toDomain()
	return &p, nil
}

func (s *SurrealStore) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]projectDoc](ctx, s.db,
		"UPDATE type::thing($tb, $id) MERGE $content RETURN AFTER",
		map[string]any{
			"tb": projectsTable,
			"id": id,
			"content": map[string]any{
				"title":        in.Title,
				"description":  in.Description,
				"tags":         []string(in.Tags),
				"technologies": []string(in.Technologies),
				"image":        in.Image,
				"url":          in.URL,
				"github_url":   in.GitHubURL,
				"featured":     in.Featured,
				"updatedAt":    ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	p := docs[0].toDomain()
	return &p, nil
}

func (s *SurrealStore) DeleteProject(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, projectsTable, id)
}

func (s *SurrealStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	docs, err := rows(surrealdb.Query[[]skillDoc](ctx, s.db,
		"SELECT * FROM skills ORDER BY createdAt DESC", nil))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Skill, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *SurrealStore) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	docs, err := rows(surrealdb.Query[[]skillDoc](ctx, s.db,
		"SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": skillsTable, "id": id}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 || docs[0].ID == nil {
		return nil, domain.ErrNotFound
	}
	sk := docs[0].toDomain()
	return &sk, nil
}

func (s *SurrealStore) InsertSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]skillDoc](ctx, s.db,
		"CREATE type::table($tb) CONTENT $content",
		map[string]any{
			"tb": skillsTable,
			"content": skillDoc{
				Title:        in.Title,
				Description:  in.Description,
				Technologies: in.Technologies,
				Category:     in.Category,
				Level:        in.Level,
				CreatedAt:    ts,
				UpdatedAt:    &ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("create returned no record")
	}
	sk := docs[0].toDomain()
	return &sk, nil
}

func (s *SurrealStore) UpdateSkill(ctx context.Context, id string, in domain.SkillInput) (*domain.Skill, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]skillDoc](ctx, s.db,
		"UPDATE type::thing($tb, $id) MERGE $content RETURN AFTER",
		map[string]any{
			"tb": skillsTable,
			"id": id,
			"content": map[string]any{
				"title":        in.Title,
				"description":  in.Description,
				"technologies": []string(in.Technologies),
				"category":     in.Category,
				"level":        in.Level,
				"updatedAt":    ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	sk := docs[0].toDomain()
	return &sk, nil
}

func (s *SurrealStore) DeleteSkill(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, skillsTable, id)
}

func (s *SurrealStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	docs, err := rows(surrealdb.Query[[]experienceDoc](ctx, s.db,
		"SELECT * FROM experience ORDER BY createdAt DESC", nil))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Experience, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *SurrealStore) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	docs, err := rows(surrealdb.Query[[]experienceDoc](ctx, s.db,
		"SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": experienceTable, "id": id}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 || docs[0].ID == nil {
		return nil, domain.ErrNotFound
	}
	e := docs[0].toDomain()
	return &e, nil
}

func (s *SurrealStore) InsertExperience(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]experienceDoc](ctx, s.db,
		"CREATE type::table($tb) CONTENT $content",
		map[string]any{
			"tb": experienceTable,
			"content": experienceDoc{
				Role:        in.Role,
				Company:     in.Company,
				Location:    in.Location,
				Period:      in.Period,
				Duration:    in.Duration,
				Description: in.Description,
				Skills:      in.Skills,
				Current:     in.Current,
				CreatedAt:   ts,
				UpdatedAt:   &ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("create returned no record")
	}
	e := docs[0].toDomain()
	return &e, nil
}

func (s *SurrealStore) UpdateExperience(ctx context.Context, id string, in domain.ExperienceInput) (*domain.Experience, error) {
	ts := now()
	docs, err := rows(surrealdb.Query[[]experienceDoc](ctx, s.db,
		"UPDATE type::thing($tb, $id) MERGE $content RETURN AFTER",
		map[string]any{
			"tb": experienceTable,
			"id": id,
			"content": map[string]any{
				"role":        in.Role,
				"company":     in.Company,
				"location":    in.Location,
				"period":      in.Period,
				"duration":    in.Duration,
				"description": in.Description,
				"skills":      []string(in.Skills),
				"current":     in.Current,
				"updatedAt":   ts,
			},
		}))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	e := docs[0].toDomain()
	return &e, nil
}

func (s *SurrealStore) DeleteExperience(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, experienceTable, id)
}

func (s *SurrealStore) deleteRecord(ctx context.Context, table, id string) error {
	docs, err := rows(surrealdb.Query[[]map[string]any](ctx, s.db,
		"DELETE type::thing($tb, $id) RETURN BEFORE",
		map[string]any{"tb": table, "id": id}))
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type countRow struct {
	Count int `json:"count"`
}

func (s *SurrealStore) count(ctx context.Context, table string) (int, error) {
	rs, err := rows(surrealdb.Query[[]countRow](ctx, s.db,
		fmt.Sprintf("SELECT count() AS count FROM %s GROUP ALL", table), nil))
	if err != nil {
		return 0, err
	}
	if len(rs) == 0 {
		return 0, nil
	}
	return rs[0].Count, nil
}

func (s *SurrealStore) Counts(ctx context.Context) (*Counts, error) {
	projects, err := s.count(ctx, projectsTable)
	if err != nil {
		return nil, err
	}
	skills, err := s.count(ctx, skillsTable)
	if err != nil {
		return nil, err
	}
	experience, err := s.count(ctx, experienceTable)
	if err != nil {
		return nil, err
	}
	return &Counts{Projects: projects, Skills: skills, Experience: experience}, nil
}

func (s *SurrealStore) Close() {
	if s.db != nil {
		_ = s.db.Close(context.Background())
	}
}
