package project

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Test helpers and mocks
// ---------------------------------------------------------------------------

func newTestService(projects projectRepo) *Service {
	return NewService(slog.New(slog.DiscardHandler), projects)
}

func ptr[T any](v T) *T { return &v }

type projectRepoMock struct {
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	GetByIDFunc func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	CreateFunc  func(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Project, error)
	UpdateFunc  func(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	DeleteFunc  func(ctx context.Context, userID, projectID uuid.UUID) error
}

func (m *projectRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	return m.ListFunc(ctx, userID)
}

func (m *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, userID, projectID)
}

func (m *projectRepoMock) Create(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Project, error) {
	return m.CreateFunc(ctx, userID, title, description)
}

func (m *projectRepoMock) Update(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	return m.UpdateFunc(ctx, userID, projectID, params)
}

func (m *projectRepoMock) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, projectID)
}

// ---------------------------------------------------------------------------
// List / Get tests
// ---------------------------------------------------------------------------

func TestService_List_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	expected := []domain.Project{
		{ID: uuid.New(), UserID: userID, Title: "Novel"},
		{ID: uuid.New(), UserID: userID, Title: "Short stories"},
	}

	projects := &projectRepoMock{
		ListFunc: func(ctx context.Context, gotUser uuid.UUID) ([]domain.Project, error) {
			assert.Equal(t, userID, gotUser)
			return expected, nil
		},
	}

	got, err := newTestService(projects).List(context.Background(), ListInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_List_MissingUserID(t *testing.T) {
	t.Parallel()

	_, err := newTestService(nil).List(context.Background(), ListInput{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	projects := &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
			return nil, domain.ErrNotFound
		},
	}

	_, err := newTestService(projects).Get(context.Background(), GetInput{UserID: uuid.New(), ProjectID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestService_Create_TrimsDescription(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	projects := &projectRepoMock{
		CreateFunc: func(ctx context.Context, gotUser uuid.UUID, title string, description *string) (*domain.Project, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, "My Novel", title)
			assert.Equal(t, ptr("about a heist"), description)
			return &domain.Project{ID: uuid.New(), UserID: gotUser, Title: title, Description: description}, nil
		},
	}

	got, err := newTestService(projects).Create(context.Background(), CreateInput{
		UserID:      userID,
		Title:       "My Novel",
		Description: ptr("  about a heist  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "My Novel", got.Title)
}

func TestService_Create_BlankDescriptionBecomesNil(t *testing.T) {
	t.Parallel()

	projects := &projectRepoMock{
		CreateFunc: func(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Project, error) {
			assert.Nil(t, description)
			return &domain.Project{ID: uuid.New(), UserID: userID, Title: title}, nil
		},
	}

	_, err := newTestService(projects).Create(context.Background(), CreateInput{
		UserID:      uuid.New(),
		Title:       "Untitled",
		Description: ptr("   "),
	})

	require.NoError(t, err)
}

func TestService_Create_EmptyTitle(t *testing.T) {
	t.Parallel()

	_, err := newTestService(nil).Create(context.Background(), CreateInput{UserID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// Update / Delete tests
// ---------------------------------------------------------------------------

func TestService_Update_PassesSparseParams(t *testing.T) {
	t.Parallel()

	projects := &projectRepoMock{
		UpdateFunc: func(ctx context.Context, userID, projectID uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
			assert.Nil(t, params.Title)
			assert.Equal(t, ptr(""), params.Description)
			return &domain.Project{ID: projectID, UserID: userID, Title: "kept"}, nil
		},
	}

	// Pointer to empty string clears the description but keeps the title.
	got, err := newTestService(projects).Update(context.Background(), UpdateInput{
		UserID:      uuid.New(),
		ProjectID:   uuid.New(),
		Description: ptr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "kept", got.Title)
}

func TestService_Update_NoFields(t *testing.T) {
	t.Parallel()

	_, err := newTestService(nil).Update(context.Background(), UpdateInput{
		UserID:    uuid.New(),
		ProjectID: uuid.New(),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete_PropagatesRepoError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("pool exhausted")
	projects := &projectRepoMock{
		DeleteFunc: func(ctx context.Context, userID, projectID uuid.UUID) error {
			return wantErr
		},
	}

	err := newTestService(projects).Delete(context.Background(), DeleteInput{UserID: uuid.New(), ProjectID: uuid.New()})
	require.ErrorIs(t, err, wantErr)
}
