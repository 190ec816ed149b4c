package domain

import (
	"time"

	"github.com/google/uuid"
)

// Character is a person (or creature) sheet attached to a project.
type Character struct {
	ID          uuid.UUID `db:"id"`
	ProjectID   uuid.UUID `db:"project_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Location is a place sheet attached to a project. The free-text fields
// beyond Description are optional writing aids.
type Location struct {
	ID               uuid.UUID `db:"id"`
	ProjectID        uuid.UUID `db:"project_id"`
	Name             string    `db:"name"`
	Description      *string   `db:"description"`
	Type             *string   `db:"location_type"`
	Atmosphere       *string   `db:"atmosphere"`
	ImportantDetails *string   `db:"important_details"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Synopsis is a summary document attached to a project. Unlike scene content,
// synopsis content is required.
type Synopsis struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CharacterUpdateParams carries a sparse character update.
type CharacterUpdateParams struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (p CharacterUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// LocationUpdateParams carries a sparse location update.
type LocationUpdateParams struct {
	Name             *string
	Description      *string
	Type             *string
	Atmosphere       *string
	ImportantDetails *string
}

// IsEmpty reports whether the update would change nothing.
func (p LocationUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil &&
		p.Atmosphere == nil && p.ImportantDetails == nil
}

// SynopsisUpdateParams carries a sparse synopsis update.
type SynopsisUpdateParams struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update would change nothing.
func (p SynopsisUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
