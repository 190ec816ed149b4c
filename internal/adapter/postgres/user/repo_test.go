package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/testhelper"
	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/user"
	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	created, err := repo.Create(ctx, "mira-"+suffix+"@example.com", "mira-"+suffix, "Mira Voss")
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("ID should be generated by the database")
	}
	if created.Name != "Mira Voss" {
		t.Errorf("Name = %q, want %q", created.Name, "Mira Voss")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Email != created.Email {
		t.Errorf("Email mismatch: got %q, want %q", got.Email, created.Email)
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	email := "dup-" + suffix + "@example.com"

	if _, err := repo.Create(ctx, email, "first-"+suffix, "First"); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, email, "second-"+suffix, "Second")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate email: got %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	username := "taken-" + suffix

	if _, err := repo.Create(ctx, "a-"+suffix+"@example.com", username, "First"); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, "b-"+suffix+"@example.com", username, "Second")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate username: got %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_GetByID_Missing(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: got %v, want ErrNotFound", err)
	}
}
