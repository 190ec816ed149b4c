// Package user implements account management. There is no authentication
// layer; callers identify themselves by user id on every request.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, email, username, name string) (*domain.User, error)
}

// Service provides user operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, input.UserID)
}

// Create registers a new user. Email and username must be unique; a conflict
// comes back as domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, strings.ToLower(input.Email), input.Username, input.Name)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("username", u.Username),
	)

	return u, nil
}

// GetInput holds the parameters for fetching one user.
type GetInput struct {
	UserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// CreateInput holds the parameters for registering a user.
type CreateInput struct {
	Email    string
	Username string
	Name     string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(i.Username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
