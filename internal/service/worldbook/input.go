package worldbook

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListCharactersInput holds the parameters for listing a project's characters.
type ListCharactersInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListCharactersInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
}

// GetCharacterInput holds the parameters for fetching one character.
type GetCharacterInput struct {
	UserID      uuid.UUID
	CharacterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetCharacterInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.CharacterID})
}

// CreateCharacterInput holds the parameters for creating a character.
type CreateCharacterInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCharacterInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCharacterInput holds the parameters for a sparse character update.
type UpdateCharacterInput struct {
	UserID      uuid.UUID
	CharacterID uuid.UUID
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCharacterInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"id", i.CharacterID})
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCharacterInput holds the parameters for deleting a character.
type DeleteCharacterInput struct {
	UserID      uuid.UUID
	CharacterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCharacterInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.CharacterID})
}

// ListLocationsInput holds the parameters for listing a project's locations.
type ListLocationsInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListLocationsInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
}

// GetLocationInput holds the parameters for fetching one location.
type GetLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetLocationInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.LocationID})
}

// CreateLocationInput holds the parameters for creating a location.
type CreateLocationInput struct {
	UserID           uuid.UUID
	ProjectID        uuid.UUID
	Name             string
	Description      *string
	Type             *string
	Atmosphere       *string
	ImportantDetails *string
}

// Validate checks all fields and collects all errors.
func (i CreateLocationInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateLocationInput holds the parameters for a sparse location update.
type UpdateLocationInput struct {
	UserID           uuid.UUID
	LocationID       uuid.UUID
	Name             *string
	Description      *string
	Type             *string
	Atmosphere       *string
	ImportantDetails *string
}

// Validate checks all fields and collects all errors.
func (i UpdateLocationInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"id", i.LocationID})
	if i.Name == nil && i.Description == nil && i.Type == nil &&
		i.Atmosphere == nil && i.ImportantDetails == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteLocationInput holds the parameters for deleting a location.
type DeleteLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteLocationInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.LocationID})
}

// ListSynopsesInput holds the parameters for listing a project's synopses.
type ListSynopsesInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListSynopsesInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
}

// GetSynopsisInput holds the parameters for fetching one synopsis.
type GetSynopsisInput struct {
	UserID     uuid.UUID
	SynopsisID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetSynopsisInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.SynopsisID})
}

// CreateSynopsisInput holds the parameters for creating a synopsis.
type CreateSynopsisInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Title     string
	Content   string
}

// Validate checks all fields and collects all errors.
func (i CreateSynopsisInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSynopsisInput holds the parameters for a sparse synopsis update.
type UpdateSynopsisInput struct {
	UserID     uuid.UUID
	SynopsisID uuid.UUID
	Title      *string
	Content    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSynopsisInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"id", i.SynopsisID})
	if i.Title == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteSynopsisInput holds the parameters for deleting a synopsis.
type DeleteSynopsisInput struct {
	UserID     uuid.UUID
	SynopsisID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteSynopsisInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.SynopsisID})
}

// ---------------------------------------------------------------------------
// Shared validation helpers
// ---------------------------------------------------------------------------

type idField struct {
	name string
	id   uuid.UUID
}

func idErrors(fields ...idField) []domain.FieldError {
	var errs []domain.FieldError
	for _, f := range fields {
		if f.id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "required"})
		}
	}
	return errs
}

func requireIDs(fields ...idField) error {
	if errs := idErrors(fields...); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
