// Package scene implements the Scene repository using PostgreSQL.
// Scenes sit two hops from the user (scene -> chapter -> project), so the
// ownership predicate traverses both joins in a single statement.
package scene

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

const table = "scenes"

var columns = []string{"id", "chapter_id", "title", "content", "order_index", "created_at", "updated_at"}

const ownedByUser = `chapter_id IN (
	SELECT c.id FROM chapters c
	JOIN projects p ON p.id = c.project_id
	WHERE p.user_id = ?)`

// Repo provides scene persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scene repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByChapter returns the scenes of a chapter ordered by order_index.
func (r *Repo) ListByChapter(ctx context.Context, userID, chapterID uuid.UUID) ([]domain.Scene, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("s", columns)...).
		From(table + " s").
		Join("chapters c ON c.id = s.chapter_id").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"s.chapter_id": chapterID, "p.user_id": userID}).
		OrderBy("s.order_index ASC", "s.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list scenes: %w", err)
	}

	scenes := []domain.Scene{}
	if err := pgxscan.Select(ctx, q, &scenes, query, args...); err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	return scenes, nil
}

// GetByID returns a scene by primary key, resolved through the full ownership
// chain. Returns domain.ErrNotFound when missing or owned by another user.
func (r *Repo) GetByID(ctx context.Context, userID, sceneID uuid.UUID) (*domain.Scene, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("s", columns)...).
		From(table + " s").
		Join("chapters c ON c.id = s.chapter_id").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"s.id": sceneID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get scene: %w", err)
	}

	var s domain.Scene
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("scene %s: %w", sceneID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "scene", sceneID)
	}

	return &s, nil
}

// NextOrderIndex computes 1 + max(order_index) among the chapter's scenes, or
// 0 when the chapter has none. Not transactional with the following insert.
func (r *Repo) NextOrderIndex(ctx context.Context, chapterID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_index) + 1, 0) FROM scenes WHERE chapter_id = $1`,
		chapterID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next scene order_index: %w", err)
	}

	return next, nil
}

// Create inserts a new scene and returns the persisted row. The caller is
// responsible for having verified chapter ownership.
func (r *Repo) Create(ctx context.Context, chapterID uuid.UUID, title string, content *string, orderIndex int) (*domain.Scene, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("chapter_id", "title", "content", "order_index").
		Values(chapterID, title, content, orderIndex).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create scene: %w", err)
	}

	var s domain.Scene
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "scene", uuid.Nil)
	}

	return &s, nil
}

// Update applies a sparse update with the ownership predicate inside the
// UPDATE. This is the hot path for auto-save: a content-only update touches
// nothing but content and updated_at.
func (r *Repo) Update(ctx context.Context, userID, sceneID uuid.UUID, params domain.SceneUpdateParams) (*domain.Scene, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": sceneID}).
		Where(sq.Expr(ownedByUser, userID)).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Content != nil {
		update = update.Set("content", postgres.NullIfEmpty(*params.Content))
	}
	if params.OrderIndex != nil {
		update = update.Set("order_index", *params.OrderIndex)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update scene: %w", err)
	}

	var s domain.Scene
	if err := pgxscan.Get(ctx, q, &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("scene %s: %w", sceneID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "scene", sceneID)
	}

	return &s, nil
}

// Delete removes a scene.
// Returns domain.ErrNotFound if the scene does not exist or is not owned.
func (r *Repo) Delete(ctx context.Context, userID, sceneID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": sceneID}).
		Where(sq.Expr(ownedByUser, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete scene: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "scene", sceneID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("scene %s: %w", sceneID, domain.ErrNotFound)
	}

	return nil
}
