package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListInput holds the parameters for listing a user's projects.
type ListInput struct {
	UserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("userId", "required")
	}
	return nil
}

// GetInput holds the parameters for fetching one project.
type GetInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	UserID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a sparse project update.
// nil = don't change; ptr("") = clear a nullable field.
type UpdateInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Title       *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}
	if i.Title == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Title != nil && len(*i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting a project.
type DeleteInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	return GetInput{UserID: i.UserID, ProjectID: i.ProjectID}.Validate()
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
