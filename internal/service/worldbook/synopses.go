package worldbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListSynopses returns all synopses of a project.
func (s *Service) ListSynopses(ctx context.Context, input ListSynopsesInput) ([]domain.Synopsis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	return s.synopses.ListByProject(ctx, input.UserID, input.ProjectID)
}

// GetSynopsis returns one synopsis by id, resolved through the ownership chain.
func (s *Service) GetSynopsis(ctx context.Context, input GetSynopsisInput) (*domain.Synopsis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.synopses.GetByID(ctx, input.UserID, input.SynopsisID)
}

// CreateSynopsis creates a synopsis under a project the user owns. Unlike
// scene content, synopsis content is required and must be non-empty.
func (s *Service) CreateSynopsis(ctx context.Context, input CreateSynopsisInput) (*domain.Synopsis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	syn, err := s.synopses.Create(ctx, input.ProjectID, input.Title, input.Content)
	if err != nil {
		return nil, fmt.Errorf("create synopsis: %w", err)
	}

	s.log.InfoContext(ctx, "synopsis created",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("synopsis_id", syn.ID.String()),
	)

	return syn, nil
}

// UpdateSynopsis applies a sparse update to a synopsis.
func (s *Service) UpdateSynopsis(ctx context.Context, input UpdateSynopsisInput) (*domain.Synopsis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	syn, err := s.synopses.Update(ctx, input.UserID, input.SynopsisID, domain.SynopsisUpdateParams{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("update synopsis: %w", err)
	}

	s.log.InfoContext(ctx, "synopsis updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("synopsis_id", syn.ID.String()),
	)

	return syn, nil
}

// DeleteSynopsis removes a synopsis.
func (s *Service) DeleteSynopsis(ctx context.Context, input DeleteSynopsisInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.synopses.Delete(ctx, input.UserID, input.SynopsisID); err != nil {
		return fmt.Errorf("delete synopsis: %w", err)
	}

	s.log.InfoContext(ctx, "synopsis deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("synopsis_id", input.SynopsisID.String()),
	)

	return nil
}
