package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by every layer. Transport maps them onto HTTP
// statuses; services and repositories wrap them with context.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// FieldError names one rejected input field and why it was rejected.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field rejected by a single request, so
// the editor can surface all problems at once instead of one per round trip.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fe.Field)
		b.WriteByte(' ')
		b.WriteString(fe.Message)
	}
	return b.String()
}

// Unwrap makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError rejecting a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
