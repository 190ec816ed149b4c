// Package chapter implements the Chapter repository using PostgreSQL.
// Ownership is one hop removed from the user: every predicate joins through
// projects so that "not found" and "not yours" are indistinguishable.
package chapter

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

const table = "chapters"

var columns = []string{"id", "project_id", "title", "description", "order_index", "created_at", "updated_at"}

// ownedByUser is the ownership predicate pushed into every statement; $-style
// placeholder numbering is handled by squirrel when used via sq.Expr.
const ownedByUser = "project_id IN (SELECT id FROM projects WHERE user_id = ?)"

// Repo provides chapter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chapter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByProject returns the chapters of a project ordered by order_index.
// The project must be owned by the user; an unowned project yields an empty
// result, which callers collapse with the parent existence check.
func (r *Repo) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("c", columns)...).
		From(table + " c").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"c.project_id": projectID, "p.user_id": userID}).
		OrderBy("c.order_index ASC", "c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list chapters: %w", err)
	}

	chapters := []domain.Chapter{}
	if err := pgxscan.Select(ctx, q, &chapters, query, args...); err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	return chapters, nil
}

// GetByID returns a chapter by primary key, resolved through the ownership
// join. Returns domain.ErrNotFound when missing or owned by another user.
func (r *Repo) GetByID(ctx context.Context, userID, chapterID uuid.UUID) (*domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("c", columns)...).
		From(table + " c").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"c.id": chapterID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get chapter: %w", err)
	}

	var c domain.Chapter
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("chapter %s: %w", chapterID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "chapter", chapterID)
	}

	return &c, nil
}

// NextOrderIndex computes 1 + max(order_index) among the project's chapters,
// or 0 when the project has none. Read-then-insert is not transactional here:
// two concurrent creates without an explicit index can receive the same value.
func (r *Repo) NextOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_index) + 1, 0) FROM chapters WHERE project_id = $1`,
		projectID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next chapter order_index: %w", err)
	}

	return next, nil
}

// Create inserts a new chapter and returns the persisted row. The caller is
// responsible for having verified project ownership.
func (r *Repo) Create(ctx context.Context, projectID uuid.UUID, title string, description *string, orderIndex int) (*domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("project_id", "title", "description", "order_index").
		Values(projectID, title, description, orderIndex).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create chapter: %w", err)
	}

	var c domain.Chapter
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		return nil, postgres.MapError(err, "chapter", uuid.Nil)
	}

	return &c, nil
}

// Update applies a sparse update with the ownership predicate inside the
// UPDATE itself. Zero affected rows surfaces as domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, chapterID uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": chapterID}).
		Where(sq.Expr(ownedByUser, userID)).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", postgres.NullIfEmpty(*params.Description))
	}
	if params.OrderIndex != nil {
		update = update.Set("order_index", *params.OrderIndex)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update chapter: %w", err)
	}

	var c domain.Chapter
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("chapter %s: %w", chapterID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "chapter", chapterID)
	}

	return &c, nil
}

// Delete removes a chapter; its scenes go with it via the schema cascade.
// Returns domain.ErrNotFound if the chapter does not exist or is not owned.
func (r *Repo) Delete(ctx context.Context, userID, chapterID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": chapterID}).
		Where(sq.Expr(ownedByUser, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete chapter: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "chapter", chapterID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chapter %s: %w", chapterID, domain.ErrNotFound)
	}

	return nil
}
