package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "writer-" + suffix + "@example.com",
		Username:  "writer-" + suffix,
		Name:      "Test Writer " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a project owned by userID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Seeded project " + suffix
	project := domain.Project{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Project " + suffix,
		Description: &desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, user_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.UserID, project.Title, project.Description, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return project
}

// SeedChapter creates a chapter under projectID with the given order index.
func SeedChapter(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, orderIndex int) domain.Chapter {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	chapter := domain.Chapter{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Title:      "Chapter " + suffix,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO chapters (id, project_id, title, description, order_index, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		chapter.ID, chapter.ProjectID, chapter.Title, chapter.Description, chapter.OrderIndex, chapter.CreatedAt, chapter.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChapter insert: %v", err)
	}

	return chapter
}

// SeedScene creates a scene under chapterID with the given order index.
func SeedScene(t *testing.T, pool *pgxpool.Pool, chapterID uuid.UUID, orderIndex int) domain.Scene {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	content := "Seeded scene text " + suffix
	scene := domain.Scene{
		ID:         uuid.New(),
		ChapterID:  chapterID,
		Title:      "Scene " + suffix,
		Content:    &content,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO scenes (id, chapter_id, title, content, order_index, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		scene.ID, scene.ChapterID, scene.Title, scene.Content, scene.OrderIndex, scene.CreatedAt, scene.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScene insert: %v", err)
	}

	return scene
}

// SeedCharacter creates a character under projectID.
func SeedCharacter(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Character {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	character := domain.Character{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Character " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO characters (id, project_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		character.ID, character.ProjectID, character.Name, character.Description, character.CreatedAt, character.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCharacter insert: %v", err)
	}

	return character
}

// SeedLocation creates a location under projectID.
func SeedLocation(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Location {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	location := domain.Location{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Location " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO locations (id, project_id, name, description, location_type, atmosphere, important_details, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		location.ID, location.ProjectID, location.Name, location.Description, location.Type,
		location.Atmosphere, location.ImportantDetails, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLocation insert: %v", err)
	}

	return location
}

// SeedSynopsis creates a synopsis under projectID.
func SeedSynopsis(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Synopsis {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	synopsis := domain.Synopsis{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     "Synopsis " + suffix,
		Content:   "Seeded synopsis text " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO synopses (id, project_id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		synopsis.ID, synopsis.ProjectID, synopsis.Title, synopsis.Content, synopsis.CreatedAt, synopsis.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSynopsis insert: %v", err)
	}

	return synopsis
}
