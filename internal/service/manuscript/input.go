package manuscript

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ListChaptersInput holds the parameters for listing a project's chapters.
type ListChaptersInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListChaptersInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
}

// GetChapterInput holds the parameters for fetching one chapter.
type GetChapterInput struct {
	UserID    uuid.UUID
	ChapterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetChapterInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.ChapterID})
}

// CreateChapterInput holds the parameters for creating a chapter.
// OrderIndex nil means "append after the last sibling".
type CreateChapterInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Description *string
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i CreateChapterInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"projectId", i.ProjectID})
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "orderIndex", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateChapterInput holds the parameters for a sparse chapter update.
type UpdateChapterInput struct {
	UserID      uuid.UUID
	ChapterID   uuid.UUID
	Title       *string
	Description *string
	OrderIndex  *int
}

// Validate checks all fields and collects all errors.
func (i UpdateChapterInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"id", i.ChapterID})
	if i.Title == nil && i.Description == nil && i.OrderIndex == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "orderIndex", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteChapterInput holds the parameters for deleting a chapter.
type DeleteChapterInput struct {
	UserID    uuid.UUID
	ChapterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteChapterInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.ChapterID})
}

// ListScenesInput holds the parameters for listing a chapter's scenes.
type ListScenesInput struct {
	UserID    uuid.UUID
	ChapterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListScenesInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"chapterId", i.ChapterID})
}

// GetSceneInput holds the parameters for fetching one scene.
type GetSceneInput struct {
	UserID  uuid.UUID
	SceneID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetSceneInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.SceneID})
}

// CreateSceneInput holds the parameters for creating a scene.
type CreateSceneInput struct {
	UserID     uuid.UUID
	ChapterID  uuid.UUID
	Title      string
	Content    *string
	OrderIndex *int
}

// Validate checks all fields and collects all errors.
func (i CreateSceneInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"chapterId", i.ChapterID})
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "orderIndex", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSceneInput holds the parameters for a sparse scene update.
type UpdateSceneInput struct {
	UserID     uuid.UUID
	SceneID    uuid.UUID
	Title      *string
	Content    *string
	OrderIndex *int
}

// Validate checks all fields and collects all errors.
func (i UpdateSceneInput) Validate() error {
	errs := idErrors(idField{"userId", i.UserID}, idField{"id", i.SceneID})
	if i.Title == nil && i.Content == nil && i.OrderIndex == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.OrderIndex != nil && *i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "orderIndex", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteSceneInput holds the parameters for deleting a scene.
type DeleteSceneInput struct {
	UserID  uuid.UUID
	SceneID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteSceneInput) Validate() error {
	return requireIDs(idField{"userId", i.UserID}, idField{"id", i.SceneID})
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
