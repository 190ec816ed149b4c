package worldbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListLocations returns all locations of a project.
func (s *Service) ListLocations(ctx context.Context, input ListLocationsInput) ([]domain.Location, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	return s.locations.ListByProject(ctx, input.UserID, input.ProjectID)
}

// GetLocation returns one location by id, resolved through the ownership chain.
func (s *Service) GetLocation(ctx context.Context, input GetLocationInput) (*domain.Location, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.locations.GetByID(ctx, input.UserID, input.LocationID)
}

// CreateLocation creates a location under a project the user owns.
func (s *Service) CreateLocation(ctx context.Context, input CreateLocationInput) (*domain.Location, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	l, err := s.locations.Create(ctx, input.ProjectID, &domain.Location{
		Name:             input.Name,
		Description:      trimOrNil(input.Description),
		Type:             trimOrNil(input.Type),
		Atmosphere:       trimOrNil(input.Atmosphere),
		ImportantDetails: trimOrNil(input.ImportantDetails),
	})
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.log.InfoContext(ctx, "location created",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("location_id", l.ID.String()),
	)

	return l, nil
}

// UpdateLocation applies a sparse update to a location.
func (s *Service) UpdateLocation(ctx context.Context, input UpdateLocationInput) (*domain.Location, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.locations.Update(ctx, input.UserID, input.LocationID, domain.LocationUpdateParams{
		Name:             input.Name,
		Description:      input.Description,
		Type:             input.Type,
		Atmosphere:       input.Atmosphere,
		ImportantDetails: input.ImportantDetails,
	})
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	s.log.InfoContext(ctx, "location updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("location_id", l.ID.String()),
	)

	return l, nil
}

// DeleteLocation removes a location.
func (s *Service) DeleteLocation(ctx context.Context, input DeleteLocationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.locations.Delete(ctx, input.UserID, input.LocationID); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	s.log.InfoContext(ctx, "location deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("location_id", input.LocationID.String()),
	)

	return nil
}
