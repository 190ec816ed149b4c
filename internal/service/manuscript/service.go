// Package manuscript implements chapter and scene management: the ordered
// tree that holds the actual manuscript text.
package manuscript

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type chapterRepo interface {
	ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Chapter, error)
	GetByID(ctx context.Context, userID, chapterID uuid.UUID) (*domain.Chapter, error)
	NextOrderIndex(ctx context.Context, projectID uuid.UUID) (int, error)
	Create(ctx context.Context, projectID uuid.UUID, title string, description *string, orderIndex int) (*domain.Chapter, error)
	Update(ctx context.Context, userID, chapterID uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error)
	Delete(ctx context.Context, userID, chapterID uuid.UUID) error
}

type sceneRepo interface {
	ListByChapter(ctx context.Context, userID, chapterID uuid.UUID) ([]domain.Scene, error)
	GetByID(ctx context.Context, userID, sceneID uuid.UUID) (*domain.Scene, error)
	NextOrderIndex(ctx context.Context, chapterID uuid.UUID) (int, error)
	Create(ctx context.Context, chapterID uuid.UUID, title string, content *string, orderIndex int) (*domain.Scene, error)
	Update(ctx context.Context, userID, sceneID uuid.UUID, params domain.SceneUpdateParams) (*domain.Scene, error)
	Delete(ctx context.Context, userID, sceneID uuid.UUID) error
}

// Service provides chapter and scene operations.
type Service struct {
	projects projectRepo
	chapters chapterRepo
	scenes   sceneRepo
	txm      txManager
	log      *slog.Logger
}

// NewService creates a new manuscript service.
func NewService(log *slog.Logger, projects projectRepo, chapters chapterRepo, scenes sceneRepo, txm txManager) *Service {
	return &Service{
		projects: projects,
		chapters: chapters,
		scenes:   scenes,
		txm:      txm,
		log:      log.With("service", "manuscript"),
	}
}
