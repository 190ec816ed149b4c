// Package project implements project management: the ownership roots every
// other resource hangs off.
package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

type projectRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

// Service provides project operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

// List returns all projects owned by the user, oldest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.projects.List(ctx, input.UserID)
}

// Get returns one project by id, scoped to its owner.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, input.UserID, input.ProjectID)
}

// Create creates a new project for the user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projects.Create(ctx, input.UserID, input.Title, trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", p.ID.String()),
	)

	return p, nil
}

// Update applies a sparse update to a project.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.projects.Update(ctx, input.UserID, input.ProjectID, domain.ProjectUpdateParams{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", p.ID.String()),
	)

	return p, nil
}

// Delete removes a project and, via the schema cascade, everything under it.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, input.UserID, input.ProjectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return nil
}
