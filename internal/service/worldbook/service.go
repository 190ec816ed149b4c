// Package worldbook implements the reference material attached to a project:
// characters, locations and synopses.
package worldbook

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type characterRepo interface {
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Character, error)
	GetByID(ctx context.Context, userID, characterID uuid.UUID) (*domain.Character, error)
	Create(ctx context.Context, projectID uuid.UUID, name string, description *string) (*domain.Character, error)
	Update(ctx context.Context, userID, characterID uuid.UUID, params domain.CharacterUpdateParams) (*domain.Character, error)
	Delete(ctx context.Context, userID, characterID uuid.UUID) error
}

type locationRepo interface {
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Location, error)
	GetByID(ctx context.Context, userID, locationID uuid.UUID) (*domain.Location, error)
	Create(ctx context.Context, projectID uuid.UUID, l *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, userID, locationID uuid.UUID, params domain.LocationUpdateParams) (*domain.Location, error)
	Delete(ctx context.Context, userID, locationID uuid.UUID) error
}

type synopsisRepo interface {
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Synopsis, error)
	GetByID(ctx context.Context, userID, synopsisID uuid.UUID) (*domain.Synopsis, error)
	Create(ctx context.Context, projectID uuid.UUID, title, content string) (*domain.Synopsis, error)
	Update(ctx context.Context, userID, synopsisID uuid.UUID, params domain.SynopsisUpdateParams) (*domain.Synopsis, error)
	Delete(ctx context.Context, userID, synopsisID uuid.UUID) error
}

// Service provides character, location and synopsis operations.
type Service struct {
	projects   projectRepo
	characters characterRepo
	locations  locationRepo
	synopses   synopsisRepo
	log        *slog.Logger
}

// NewService creates a new worldbook service.
func NewService(log *slog.Logger, projects projectRepo, characters characterRepo, locations locationRepo, synopses synopsisRepo) *Service {
	return &Service{
		projects:   projects,
		characters: characters,
		locations:  locations,
		synopses:   synopses,
		log:        log.With("service", "worldbook"),
	}
}
