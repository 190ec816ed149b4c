package worldbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListCharacters returns all characters of a project. The parent project is
// fetched first, scoped to the user, so a missing project and an unowned
// project both come back as domain.ErrNotFound.
func (s *Service) ListCharacters(ctx context.Context, input ListCharactersInput) ([]domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	return s.characters.ListByProject(ctx, input.UserID, input.ProjectID)
}

// GetCharacter returns one character by id, resolved through the ownership chain.
func (s *Service) GetCharacter(ctx context.Context, input GetCharacterInput) (*domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.characters.GetByID(ctx, input.UserID, input.CharacterID)
}

// CreateCharacter creates a character under a project the user owns.
func (s *Service) CreateCharacter(ctx context.Context, input CreateCharacterInput) (*domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	c, err := s.characters.Create(ctx, input.ProjectID, input.Name, trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	s.log.InfoContext(ctx, "character created",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("character_id", c.ID.String()),
	)

	return c, nil
}

// UpdateCharacter applies a sparse update to a character.
func (s *Service) UpdateCharacter(ctx context.Context, input UpdateCharacterInput) (*domain.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.characters.Update(ctx, input.UserID, input.CharacterID, domain.CharacterUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update character: %w", err)
	}

	s.log.InfoContext(ctx, "character updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("character_id", c.ID.String()),
	)

	return c, nil
}

// DeleteCharacter removes a character.
func (s *Service) DeleteCharacter(ctx context.Context, input DeleteCharacterInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.characters.Delete(ctx, input.UserID, input.CharacterID); err != nil {
		return fmt.Errorf("delete character: %w", err)
	}

	s.log.InfoContext(ctx, "character deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("character_id", input.CharacterID.String()),
	)

	return nil
}
