// Package synopsis implements the Synopsis repository using PostgreSQL.
package synopsis

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

const table = "synopses"

var columns = []string{"id", "project_id", "title", "content", "created_at", "updated_at"}

const ownedByUser = "project_id IN (SELECT id FROM projects WHERE user_id = ?)"

// Repo provides synopsis persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new synopsis repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByProject returns the synopses of a project in creation order.
func (r *Repo) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Synopsis, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("s", columns)...).
		From(table + " s").
		Join("projects p ON p.id = s.project_id").
		Where(sq.Eq{"s.project_id": projectID, "p.user_id": userID}).
		OrderBy("s.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list synopses: %w", err)
	}

	synopses := []domain.Synopsis{}
	if err := pgxscan.Select(ctx, q, &synopses, query, args...); err != nil {
		return nil, fmt.Errorf("list synopses: %w", err)
	}

	return synopses, nil
}

// GetByID returns a synopsis by primary key through the ownership join.
func (r *Repo) GetByID(ctx context.Context, userID, synopsisID uuid.UUID) (*domain.Synopsis, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("s", columns)...).
		From(table + " s").
		Join("projects p ON p.id = s.project_id").
		Where(sq.Eq{"s.id": synopsisID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get synopsis: %w", err)
	}

	var s domain.Synopsis
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("synopsis %s: %w", synopsisID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "synopsis", synopsisID)
	}

	return &s, nil
}

// Create inserts a new synopsis. Content is NOT NULL at the schema level; an
// empty string is stored as-is, never as NULL.
func (r *Repo) Create(ctx context.Context, projectID uuid.UUID, title, content string) (*domain.Synopsis, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("project_id", "title", "content").
		Values(projectID, title, content).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create synopsis: %w", err)
	}

	var s domain.Synopsis
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "synopsis", uuid.Nil)
	}

	return &s, nil
}

// Update applies a sparse update with the ownership predicate in the UPDATE.
func (r *Repo) Update(ctx context.Context, userID, synopsisID uuid.UUID, params domain.SynopsisUpdateParams) (*domain.Synopsis, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": synopsisID}).
		Where(sq.Expr(ownedByUser, userID)).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Content != nil {
		update = update.Set("content", *params.Content)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update synopsis: %w", err)
	}

	var s domain.Synopsis
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("synopsis %s: %w", synopsisID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "synopsis", synopsisID)
	}

	return &s, nil
}

// Delete removes a synopsis.
func (r *Repo) Delete(ctx context.Context, userID, synopsisID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": synopsisID}).
		Where(sq.Expr(ownedByUser, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete synopsis: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "synopsis", synopsisID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("synopsis %s: %w", synopsisID, domain.ErrNotFound)
	}

	return nil
}
