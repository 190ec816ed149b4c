// Package location implements the Location repository using PostgreSQL.
package location

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

const table = "locations"

var columns = []string{"id", "project_id", "name", "description", "location_type", "atmosphere", "important_details", "created_at", "updated_at"}

const ownedByUser = "project_id IN (SELECT id FROM projects WHERE user_id = ?)"

// Repo provides location persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new location repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByProject returns the locations of a project in creation order.
func (r *Repo) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Location, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("l", columns)...).
		From(table + " l").
		Join("projects p ON p.id = l.project_id").
		Where(sq.Eq{"l.project_id": projectID, "p.user_id": userID}).
		OrderBy("l.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list locations: %w", err)
	}

	locations := []domain.Location{}
	if err := pgxscan.Select(ctx, q, &locations, query, args...); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	return locations, nil
}

// GetByID returns a location by primary key through the ownership join.
func (r *Repo) GetByID(ctx context.Context, userID, locationID uuid.UUID) (*domain.Location, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select(postgres.PrefixColumns("l", columns)...).
		From(table + " l").
		Join("projects p ON p.id = l.project_id").
		Where(sq.Eq{"l.id": locationID, "p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get location: %w", err)
	}

	var l domain.Location
	if err := pgxscan.Get(ctx, q, &l, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "location", locationID)
	}

	return &l, nil
}

// Create inserts a new location. The caller is responsible for having
// verified project ownership.
func (r *Repo) Create(ctx context.Context, projectID uuid.UUID, l *domain.Location) (*domain.Location, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("project_id", "name", "description", "location_type", "atmosphere", "important_details").
		Values(projectID, l.Name, l.Description, l.Type, l.Atmosphere, l.ImportantDetails).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create location: %w", err)
	}

	var created domain.Location
	if err := pgxscan.Get(ctx, q, &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "location", uuid.Nil)
	}

	return &created, nil
}

// Update applies a sparse update with the ownership predicate in the UPDATE.
func (r *Repo) Update(ctx context.Context, userID, locationID uuid.UUID, params domain.LocationUpdateParams) (*domain.Location, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": locationID}).
		Where(sq.Expr(ownedByUser, userID)).
		Suffix("RETURNING " + postgres.ColumnList(columns))

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", postgres.NullIfEmpty(*params.Description))
	}
	if params.Type != nil {
		update = update.Set("location_type", postgres.NullIfEmpty(*params.Type))
	}
	if params.Atmosphere != nil {
		update = update.Set("atmosphere", postgres.NullIfEmpty(*params.Atmosphere))
	}
	if params.ImportantDetails != nil {
		update = update.Set("important_details", postgres.NullIfEmpty(*params.ImportantDetails))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update location: %w", err)
	}

	var l domain.Location
	if err := pgxscan.Get(ctx, q, &l, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "location", locationID)
	}

	return &l, nil
}

// Delete removes a location.
func (r *Repo) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": locationID}).
		Where(sq.Expr(ownedByUser, userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete location: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "location", locationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
	}

	return nil
}
