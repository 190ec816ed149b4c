package manuscript

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListScenes returns the scenes of a chapter ordered by order_index. The
// parent chapter is resolved through the ownership chain first.
func (s *Service) ListScenes(ctx context.Context, input ListScenesInput) ([]domain.Scene, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.chapters.GetByID(ctx, input.UserID, input.ChapterID); err != nil {
		return nil, fmt.Errorf("check chapter: %w", err)
	}

	return s.scenes.ListByChapter(ctx, input.UserID, input.ChapterID)
}

// GetScene returns one scene by id, resolved through the ownership chain.
func (s *Service) GetScene(ctx context.Context, input GetSceneInput) (*domain.Scene, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.scenes.GetByID(ctx, input.UserID, input.SceneID)
}

// CreateScene creates a scene under a chapter the user owns, defaulting the
// order index the same way CreateChapter does.
func (s *Service) CreateScene(ctx context.Context, input CreateSceneInput) (*domain.Scene, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.chapters.GetByID(ctx, input.UserID, input.ChapterID); err != nil {
		return nil, fmt.Errorf("check chapter: %w", err)
	}

	var sc *domain.Scene
	var err error
	if input.OrderIndex != nil {
		sc, err = s.scenes.Create(ctx, input.ChapterID, input.Title, input.Content, *input.OrderIndex)
	} else {
		err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
			next, err := s.scenes.NextOrderIndex(ctx, input.ChapterID)
			if err != nil {
				return fmt.Errorf("default order index: %w", err)
			}
			sc, err = s.scenes.Create(ctx, input.ChapterID, input.Title, input.Content, next)
			return err
		})
	}
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}

	s.log.InfoContext(ctx, "scene created",
		slog.String("user_id", input.UserID.String()),
		slog.String("chapter_id", input.ChapterID.String()),
		slog.String("scene_id", sc.ID.String()),
		slog.Int("order_index", sc.OrderIndex),
	)

	return sc, nil
}

// UpdateScene applies a sparse update to a scene. Content updates are the
// auto-save hot path, so this logs at debug rather than info.
func (s *Service) UpdateScene(ctx context.Context, input UpdateSceneInput) (*domain.Scene, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sc, err := s.scenes.Update(ctx, input.UserID, input.SceneID, domain.SceneUpdateParams{
		Title:      input.Title,
		Content:    input.Content,
		OrderIndex: input.OrderIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("update scene: %w", err)
	}

	s.log.DebugContext(ctx, "scene updated",
		slog.String("user_id", input.UserID.String()),
		slog.String("scene_id", sc.ID.String()),
	)

	return sc, nil
}

// DeleteScene removes a scene.
func (s *Service) DeleteScene(ctx context.Context, input DeleteSceneInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.scenes.Delete(ctx, input.UserID, input.SceneID); err != nil {
		return fmt.Errorf("delete scene: %w", err)
	}

	s.log.InfoContext(ctx, "scene deleted",
		slog.String("user_id", input.UserID.String()),
		slog.String("scene_id", input.SceneID.String()),
	)

	return nil
}
