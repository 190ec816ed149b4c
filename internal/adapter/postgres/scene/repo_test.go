package scene_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/scene"
	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/testhelper"
	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*scene.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return scene.New(pool), pool
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Create + GetByID tests
// ---------------------------------------------------------------------------

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)

	created, err := repo.Create(ctx, chapter.ID, "Opening", ptr("She was late."), 0)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ChapterID != chapter.ID {
		t.Errorf("ChapterID mismatch: got %s, want %s", created.ChapterID, chapter.ID)
	}
	if created.Title != "Opening" {
		t.Errorf("Title = %q, want %q", created.Title, "Opening")
	}
	if created.Content == nil || *created.Content != "She was late." {
		t.Errorf("Content mismatch: got %v", created.Content)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be set by the database")
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, created.ID)
	}
}

func TestRepo_GetByID_OtherUsersScene(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	stranger := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, owner.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	// The ownership chain (scene -> chapter -> project -> user) must hide
	// other users' scenes behind the same not-found as missing ones.
	if _, err := repo.GetByID(ctx, stranger.ID, sc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID as stranger: got %v, want ErrNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// ListByChapter tests
// ---------------------------------------------------------------------------

func TestRepo_ListByChapter_OrderedByOrderIndex(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	other := testhelper.SeedChapter(t, pool, project.ID, 1)

	third := testhelper.SeedScene(t, pool, chapter.ID, 2)
	first := testhelper.SeedScene(t, pool, chapter.ID, 0)
	second := testhelper.SeedScene(t, pool, chapter.ID, 1)
	testhelper.SeedScene(t, pool, other.ID, 0)

	scenes, err := repo.ListByChapter(ctx, user.ID, chapter.ID)
	if err != nil {
		t.Fatalf("ListByChapter: unexpected error: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("len(scenes) = %d, want 3", len(scenes))
	}
	for i, want := range []domain.Scene{first, second, third} {
		if scenes[i].ID != want.ID {
			t.Errorf("scenes[%d].ID = %s, want %s (order_index %d)", i, scenes[i].ID, want.ID, want.OrderIndex)
		}
	}
}

func TestRepo_ListByChapter_EmptyChapter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)

	scenes, err := repo.ListByChapter(ctx, user.ID, chapter.ID)
	if err != nil {
		t.Fatalf("ListByChapter: unexpected error: %v", err)
	}
	if scenes == nil {
		t.Error("empty chapter should yield an empty slice, not nil")
	}
	if len(scenes) != 0 {
		t.Errorf("len(scenes) = %d, want 0", len(scenes))
	}
}

// ---------------------------------------------------------------------------
// NextOrderIndex tests
// ---------------------------------------------------------------------------

func TestRepo_NextOrderIndex(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)

	next, err := repo.NextOrderIndex(ctx, chapter.ID)
	if err != nil {
		t.Fatalf("NextOrderIndex: unexpected error: %v", err)
	}
	if next != 0 {
		t.Errorf("empty chapter: next = %d, want 0", next)
	}

	testhelper.SeedScene(t, pool, chapter.ID, 4)

	next, err = repo.NextOrderIndex(ctx, chapter.ID)
	if err != nil {
		t.Fatalf("NextOrderIndex: unexpected error: %v", err)
	}
	if next != 5 {
		t.Errorf("next = %d, want 5 (1 + max sibling index)", next)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestRepo_Update_ContentOnly(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	updated, err := repo.Update(ctx, user.ID, sc.ID, domain.SceneUpdateParams{
		Content: ptr("New draft text."),
	})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if updated.Content == nil || *updated.Content != "New draft text." {
		t.Errorf("Content mismatch: got %v", updated.Content)
	}
	if updated.Title != sc.Title {
		t.Errorf("Title changed by a content-only update: got %q, want %q", updated.Title, sc.Title)
	}
	if updated.OrderIndex != sc.OrderIndex {
		t.Errorf("OrderIndex changed: got %d, want %d", updated.OrderIndex, sc.OrderIndex)
	}
	if !updated.UpdatedAt.After(sc.UpdatedAt) {
		t.Error("UpdatedAt should advance on update")
	}
}

func TestRepo_Update_EmptyContentClearsColumn(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	updated, err := repo.Update(ctx, user.ID, sc.ID, domain.SceneUpdateParams{
		Content: ptr(""),
	})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if updated.Content != nil {
		t.Errorf("empty string should clear content to NULL, got %q", *updated.Content)
	}
}

func TestRepo_Update_NotOwned(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	stranger := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, owner.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	_, err := repo.Update(ctx, stranger.ID, sc.ID, domain.SceneUpdateParams{
		Content: ptr("hijacked"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update as stranger: got %v, want ErrNotFound", err)
	}

	// The row must be untouched.
	got, err := repo.GetByID(ctx, owner.ID, sc.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Content == nil || *got.Content != *sc.Content {
		t.Errorf("content was modified by an unauthorized update: got %v", got.Content)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, user.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	if err := repo.Delete(ctx, user.ID, sc.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	if _, err := repo.GetByID(ctx, user.ID, sc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete: got %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, user.ID, sc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete: got %v, want ErrNotFound", err)
	}
}

func TestRepo_Delete_NotOwned(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	stranger := testhelper.SeedUser(t, pool)
	project := testhelper.SeedProject(t, pool, owner.ID)
	chapter := testhelper.SeedChapter(t, pool, project.ID, 0)
	sc := testhelper.SeedScene(t, pool, chapter.ID, 0)

	if err := repo.Delete(ctx, stranger.ID, sc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete as stranger: got %v, want ErrNotFound", err)
	}

	if _, err := repo.GetByID(ctx, owner.ID, sc.ID); err != nil {
		t.Fatalf("scene should survive an unauthorized delete: %v", err)
	}
}
