package manuscript

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListChapters returns the chapters of a project ordered by order_index.
// The parent project is fetched first, scoped to the user: a missing project
// and an unowned project both come back as domain.ErrNotFound.
func (s *Service) ListChapters(ctx context.Context, input ListChaptersInput) ([]domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	return s.chapters.ListByProject(ctx, input.UserID, input.ProjectID)
}

// GetChapter returns one chapter by id, resolved through the ownership chain.
func (s *Service) GetChapter(ctx context.Context, input GetChapterInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.chapters.GetByID(ctx, input.UserID, input.ChapterID)
}

// CreateChapter creates a chapter under a project the user owns. When no
// order index is supplied it defaults to one past the current maximum among
// siblings (0 for the first chapter). The max read and the insert share one
// transaction; concurrent unordered creates can still compute the same index
// under read committed.
func (s *Service) CreateChapter(ctx context.Context, input CreateChapterInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}

	var c *domain.Chapter
	var err error
	if input.OrderIndex != nil {
		c, err = s.chapters.Create(ctx, input.ProjectID, input.Title, trimOrNil(input.Description), *input.OrderIndex)
	} else {
		err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
			next, err := s.chapters.NextOrderIndex(ctx, input.ProjectID)
			if err != nil {
				return fmt.Errorf("default order index: %w", err)
			}
			c, err = s.chapters.Create(ctx, input.ProjectID, input.Title, trimOrNil(input.Description), next)
			return err
		})
	}
	if err != nil {
		return nil, fmt.Errorf("create chapter: %w", err)
	}

	s.log.InfoContext(ctx, "chapter created",
		slog.String("user_id", input.UserID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("chapter_id", c.ID.String()),
		slog.Int("order_index", c.OrderIndex),
	)

	return c, nil
}

// UpdateChapter applies a sparse update to a chapter.
func (s *Service) UpdateChapter(ctx context.Context, input UpdateChapterInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.chapters.Update(ctx, input.UserID, input.ChapterID, domain.ChapterUpdateParams{
		Title:       input.Title,
		Description: input.Description,
		OrderIndex:  input.OrderIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("update chapter: %w", err)
	}

	s.log.InfoContext(ctx, "chapter updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("chapter_id", c.ID.String()),
	)

	return c, nil
}

// DeleteChapter removes a chapter and its scenes.
func (s *Service) DeleteChapter(ctx context.Context, input DeleteChapterInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.chapters.Delete(ctx, input.UserID, input.ChapterID); err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}

	s.log.InfoContext(ctx, "chapter deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("chapter_id", input.ChapterID.String()),
	)

	return nil
}
