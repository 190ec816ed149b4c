package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the top-level container for a manuscript. It is owned by exactly
// one user; deleting it cascades to all chapters, scenes, characters,
// locations and synopses underneath it.
type Project struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ProjectUpdateParams carries a sparse update: nil means leave the field
// unchanged, a pointer to the empty string clears a nullable field.
type ProjectUpdateParams struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (p ProjectUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}
