// Package character implements the Character repository using PostgreSQL.
package character

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

const table = "characters"

var columns = []string{"id", "project_id", "name", "description", "created_at", "updated_at"}

const ownedByUser = "project_id IN (SELECT id FROM projects WHERE user_id = ?)"

// Repo provides character persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new character repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByProject returns the characters of a project in creation order.
func (r *Repo) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("ch", columns)...).
		From(table + " ch").
		Join("projects p ON p.id = ch.project_id").
		Where(sq.Eq{"ch.project_id": projectID, "p.user_id": userID}).
		OrderBy("ch.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list characters: %w", err)
	}

	characters := []domain.Character{}
	if err := pgxscan.Select(ctx, q, &characters, query, args...); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}

	return characters, nil
}

// GetByID returns a character by primary key through the ownership join.
func (r *Repo) GetByID(ctx context.Context, userID, characterID uuid.UUID) (*domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("ch", columns)...).
		From(table + " ch").
		Join("projects p ON p.id = ch.project_id").
		Where(sq.Eq{"ch.id": characterID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get character: %w", err)
	}

	var c domain.Character
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("character %s: %w", characterID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "character", characterID)
	}

	return &c, nil
}

// Create inserts a new character. The caller is responsible for having
// verified project ownership.
func (r *Repo) Create(ctx context.Context, projectID uuid.UUID, name string, description *string) (*domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("project_id", "name", "description").
		Values(projectID, name, description).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create character: %w", err)
	}

	var c domain.Character
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		return nil, postgres.MapError(err, "character", uuid.Nil)
	}

	return &c, nil
}

// Update applies a sparse update with the ownership predicate in the UPDATE.
func (r *Repo) Update(ctx context.Context, userID, characterID uuid.UUID, params domain.CharacterUpdateParams) (*domain.Character, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": characterID}).
		Where(sq.Expr(ownedByUser, userID)).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", postgres.NullIfEmpty(*params.Description))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update character: %w", err)
	}

	var c domain.Character
	if err := pgxscan.Get(ctx, q, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("character %s: %w", characterID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "character", characterID)
	}

	return &c, nil
}

// Delete removes a character.
func (r *Repo) Delete(ctx context.Context, userID, characterID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": characterID}).
		Where(sq.Expr(ownedByUser, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete character: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "character", characterID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("character %s: %w", characterID, domain.ErrNotFound)
	}

	return nil
}
