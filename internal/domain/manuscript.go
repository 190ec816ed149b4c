package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chapter groups scenes inside a project. OrderIndex defines display order
// among sibling chapters; it is not guaranteed unique or gap-free.
type Chapter struct {
	ID          uuid.UUID `db:"id"`
	ProjectID   uuid.UUID `db:"project_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	OrderIndex  int       `db:"order_index"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Scene is a unit of manuscript text inside a chapter. Content holds the
// rich-text body as an opaque string; it may be null for a scene that has
// been outlined but not written.
type Scene struct {
	ID         uuid.UUID `db:"id"`
	ChapterID  uuid.UUID `db:"chapter_id"`
	Title      string    `db:"title"`
	Content    *string   `db:"content"`
	OrderIndex int       `db:"order_index"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ChapterUpdateParams carries a sparse chapter update.
type ChapterUpdateParams struct {
	Title       *string
	Description *string
	OrderIndex  *int
}

// IsEmpty reports whether the update would change nothing.
func (p ChapterUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.OrderIndex == nil
}

// SceneUpdateParams carries a sparse scene update.
type SceneUpdateParams struct {
	Title      *string
	Content    *string
	OrderIndex *int
}

// IsEmpty reports whether the update would change nothing.
func (p SceneUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.OrderIndex == nil
}
