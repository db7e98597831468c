package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/favourop/portfolio-backend/internal/content/domain"
)

// PostgresStore persists the content collections in Postgres (Supabase in
// the hosted setup). Columns follow the snake_case convention of that
// schema (created_at, updated_at, github_url); the mapping back to the
// canonical entity shape happens here so call sites never see it.
//
// The pool is acquired lazily on first use and reused for every request.
type PostgresStore struct {
	url string

	once    sync.Once
	pool    *pgxpool.Pool
	poolErr error
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(url string) *PostgresStore {
	return &PostgresStore{url: url}
}

func (s *PostgresStore) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	s.once.Do(func() {
		pool, err := pgxpool.New(ctx, s.url)
		if err != nil {
			s.poolErr = fmt.Errorf("open postgres pool: %w", err)
			return
		}
		s.pool = pool
	})
	return s.pool, s.poolErr
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const projectColumns = `id::text, title, description, tags, technologies, image,
	coalesce(url, ''), coalesce(github_url, ''), featured, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Tags, &p.Technologies,
		&p.Image, &p.URL, &p.GitHubURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC`, projectColumns)
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM projects WHERE id::text = $1`, projectColumns)
	return scanProject(pool.QueryRow(ctx, q, id))
}

func (s *PostgresStore) InsertProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
INSERT INTO projects (title, description, tags, technologies, image, url, github_url, featured)
VALUES ($1, $2, $3, $4, $5, nullif($6, ''), nullif($7, ''), $8)
RETURNING %s`, projectColumns)
	return scanProject(pool.QueryRow(ctx, q,
		in.Title, in.Description, []string(in.Tags), []string(in.Technologies),
		in.Image, in.URL, in.GitHubURL, in.Featured))
}

func (s *PostgresStore) UpdateProject(ctx context.Context, id string, in domain.ProjectInput) (*domain.Project, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
UPDATE projects
SET title = $2, description = $3, tags = $4, technologies = $5, image = $6,
    url = nullif($7, ''), github_url = nullif($8, ''), featured = $9, updated_at = now()
WHERE id::text = $1
RETURNING %s`, projectColumns)
	return scanProject(pool.QueryRow(ctx, q, id,
		in.Title, in.Description, []string(in.Tags), []string(in.Technologies),
		in.Image, in.URL, in.GitHubURL, in.Featured))
}

func (s *PostgresStore) DeleteProject(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "projects", id)
}

const skillColumns = `id::text, title, description, technologies, category, level, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var sk domain.Skill
	err := row.Scan(&sk.ID, &sk.Title, &sk.Description, &sk.Technologies,
		&sk.Category, &sk.Level, &sk.CreatedAt, &sk.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sk, nil
}

func (s *PostgresStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM skills ORDER BY created_at DESC`, skillColumns)
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 16)
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sk)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM skills WHERE id::text = $1`, skillColumns)
	return scanSkill(pool.QueryRow(ctx, q, id))
}

func (s *PostgresStore) InsertSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
INSERT INTO skills (title, description, technologies, category, level)
VALUES ($1, $2, $3, $4, $5)
RETURNING %s`, skillColumns)
	return scanSkill(pool.QueryRow(ctx, q,
		in.Title, in.Description, []string(in.Technologies), in.Category, in.Level))
}

func (s *PostgresStore) UpdateSkill(ctx context.Context, id string, in domain.SkillInput) (*domain.Skill, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
UPDATE skills
SET title = $2, description = $3, technologies = $4, category = $5, level = $6, updated_at = now()
WHERE id::text = $1
RETURNING %s`, skillColumns)
	return scanSkill(pool.QueryRow(ctx, q, id,
		in.Title, in.Description, []string(in.Technologies), in.Category, in.Level))
}

func (s *PostgresStore) DeleteSkill(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "skills", id)
}

const experienceColumns = `id::text, role, company, location, period, duration,
	description, skills, current, created_at, updated_at`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(&e.ID, &e.Role, &e.Company, &e.Location, &e.Period, &e.Duration,
		&e.Description, &e.Skills, &e.Current, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *PostgresStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM experience ORDER BY created_at DESC`, experienceColumns)
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Experience, 0, 16)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`SELECT %s FROM experience WHERE id::text = $1`, experienceColumns)
	return scanExperience(pool.QueryRow(ctx, q, id))
}

func (s *PostgresStore) InsertExperience(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
INSERT INTO experience (role, company, location, period, duration, description, skills, current)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING %s`, experienceColumns)
	return scanExperience(pool.QueryRow(ctx, q,
		in.Role, in.Company, in.Location, in.Period, in.Duration,
		in.Description, []string(in.Skills), in.Current))
}

func (s *PostgresStore) UpdateExperience(ctx context.Context, id string, in domain.ExperienceInput) (*domain.Experience, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
UPDATE experience
SET role = $2, company = $3, location = $4, period = $5, duration = $6,
    description = $7, skills = $8, current = $9, updated_at = now()
WHERE id::text = $1
RETURNING %s`, experienceColumns)
	return scanExperience(pool.QueryRow(ctx, q, id,
		in.Role, in.Company, in.Location, in.Period, in.Duration,
		in.Description, []string(in.Skills), in.Current))
}

func (s *PostgresStore) DeleteExperience(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "experience", id)
}

func (s *PostgresStore) deleteFrom(ctx context.Context, table, id string) error {
	pool, err := s.acquire(ctx)
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id::text = $1`, table), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Counts(ctx context.Context) (*Counts, error) {
	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	var c Counts
	err = pool.QueryRow(ctx, `
SELECT
	(SELECT count(*) FROM projects),
	(SELECT count(*) FROM skills),
	(SELECT count(*) FROM experience)`).
		Scan(&c.Projects, &c.Skills, &c.Experience)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
