// Package project implements the Project repository using PostgreSQL.
// Projects are the ownership roots: every query here filters on user_id
// directly, and every child repository joins back to this table.
package project

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres"
	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

const table = "projects"

var columns = []string{"id", "user_id", "title", "description", "created_at", "updated_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all projects owned by the user, oldest first.
// Returns an empty slice (not nil) when the user has no projects.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	projects := []domain.Project{}
	if err := pgxscan.Select(ctx, q, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetByID returns a project by primary key scoped to its owner.
// Returns domain.ErrNotFound both when the project does not exist and when it
// belongs to another user; callers cannot tell the two apart.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project: %w", err)
	}

	var p domain.Project
	if err := pgxscan.Get(ctx, q, &p, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &p, nil
}

// Create inserts a new project and returns the persisted row including
// server-assigned id and timestamps.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "description").
		Values(userID, title, description).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create project: %w", err)
	}

	var p domain.Project
	if err := pgxscan.Get(ctx, q, &p, query, args...); err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	return &p, nil
}

// Update applies a sparse update: only non-nil params are written. The owner
// predicate is part of the UPDATE itself, so an unowned id updates zero rows
// and surfaces as domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", postgres.NullIfEmpty(*params.Description))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project: %w", err)
	}

	var p domain.Project
	if err := pgxscan.Get(ctx, q, &p, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &p, nil
}

// Delete removes a project. The schema cascades to chapters, scenes,
// characters, locations and synopses.
// Returns domain.ErrNotFound if the project does not exist or is not owned.
func (r *Repo) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete project: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}
