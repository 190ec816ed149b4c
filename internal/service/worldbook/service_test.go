package worldbook

import (
	"context"
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

func newTestService(projects projectRepo, characters characterRepo, locations locationRepo, synopses synopsisRepo) *Service {
	return NewService(slog.New(slog.DiscardHandler), projects, characters, locations, synopses)
}

func ptr[T any](v T) *T { return &v }

type projectRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
}

func (m *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	return m.GetByIDFunc(ctx, userID, projectID)
}

func okProjectRepo() *projectRepoMock {
	return &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
			return &domain.Project{ID: projectID, UserID: userID}, nil
		},
	}
}

func missingProjectRepo() *projectRepoMock {
	return &projectRepoMock{
		GetByIDFunc: func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
			return nil, domain.ErrNotFound
		},
	}
}

type characterRepoMock struct {
	ListByProjectFunc func(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Character, error)
	GetByIDFunc       func(ctx context.Context, userID, characterID uuid.UUID) (*domain.Character, error)
	CreateFunc        func(ctx context.Context, projectID uuid.UUID, name string, description *string) (*domain.Character, error)
	UpdateFunc        func(ctx context.Context, userID, characterID uuid.UUID, params domain.CharacterUpdateParams) (*domain.Character, error)
	DeleteFunc        func(ctx context.Context, userID, characterID uuid.UUID) error
}

func (m *characterRepoMock) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Character, error) {
	return m.ListByProjectFunc(ctx, userID, projectID)
}

func (m *characterRepoMock) GetByID(ctx context.Context, userID, characterID uuid.UUID) (*domain.Character, error) {
	return m.GetByIDFunc(ctx, userID, characterID)
}

func (m *characterRepoMock) Create(ctx context.Context, projectID uuid.UUID, name string, description *string) (*domain.Character, error) {
	return m.CreateFunc(ctx, projectID, name, description)
}

func (m *characterRepoMock) Update(ctx context.Context, userID, characterID uuid.UUID, params domain.CharacterUpdateParams) (*domain.Character, error) {
	return m.UpdateFunc(ctx, userID, characterID, params)
}

func (m *characterRepoMock) Delete(ctx context.Context, userID, characterID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, characterID)
}

type locationRepoMock struct {
	ListByProjectFunc func(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Location, error)
	GetByIDFunc       func(ctx context.Context, userID, locationID uuid.UUID) (*domain.Location, error)
	CreateFunc        func(ctx context.Context, projectID uuid.UUID, l *domain.Location) (*domain.Location, error)
	UpdateFunc        func(ctx context.Context, userID, locationID uuid.UUID, params domain.LocationUpdateParams) (*domain.Location, error)
	DeleteFunc        func(ctx context.Context, userID, locationID uuid.UUID) error
}

func (m *locationRepoMock) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Location, error) {
	return m.ListByProjectFunc(ctx, userID, projectID)
}

func (m *locationRepoMock) GetByID(ctx context.Context, userID, locationID uuid.UUID) (*domain.Location, error) {
	return m.GetByIDFunc(ctx, userID, locationID)
}

func (m *locationRepoMock) Create(ctx context.Context, projectID uuid.UUID, l *domain.Location) (*domain.Location, error) {
	return m.CreateFunc(ctx, projectID, l)
}

func (m *locationRepoMock) Update(ctx context.Context, userID, locationID uuid.UUID, params domain.LocationUpdateParams) (*domain.Location, error) {
	return m.UpdateFunc(ctx, userID, locationID, params)
}

func (m *locationRepoMock) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, locationID)
}

type synopsisRepoMock struct {
	ListByProjectFunc func(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Synopsis, error)
	GetByIDFunc       func(ctx context.Context, userID, synopsisID uuid.UUID) (*domain.Synopsis, error)
	CreateFunc        func(ctx context.Context, projectID uuid.UUID, title, content string) (*domain.Synopsis, error)
	UpdateFunc        func(ctx context.Context, userID, synopsisID uuid.UUID, params domain.SynopsisUpdateParams) (*domain.Synopsis, error)
	DeleteFunc        func(ctx context.Context, userID, synopsisID uuid.UUID) error
}

func (m *synopsisRepoMock) ListByProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Synopsis, error) {
	return m.ListByProjectFunc(ctx, userID, projectID)
}

func (m *synopsisRepoMock) GetByID(ctx context.Context, userID, synopsisID uuid.UUID) (*domain.Synopsis, error) {
	return m.GetByIDFunc(ctx, userID, synopsisID)
}

func (m *synopsisRepoMock) Create(ctx context.Context, projectID uuid.UUID, title, content string) (*domain.Synopsis, error) {
	return m.CreateFunc(ctx, projectID, title, content)
}

func (m *synopsisRepoMock) Update(ctx context.Context, userID, synopsisID uuid.UUID, params domain.SynopsisUpdateParams) (*domain.Synopsis, error) {
	return m.UpdateFunc(ctx, userID, synopsisID, params)
}

func (m *synopsisRepoMock) Delete(ctx context.Context, userID, synopsisID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, synopsisID)
}

// ---------------------------------------------------------------------------
// Character tests
// ---------------------------------------------------------------------------

func TestService_ListCharacters_ChecksProjectOwnership(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	projectID := uuid.New()
	expected := []domain.Character{{ID: uuid.New(), ProjectID: projectID, Name: "Mira"}}

	characters := &characterRepoMock{
		ListByProjectFunc: func(ctx context.Context, gotUser, gotProject uuid.UUID) ([]domain.Character, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, projectID, gotProject)
			return expected, nil
		},
	}

	svc := newTestService(okProjectRepo(), characters, nil, nil)
	got, err := svc.ListCharacters(context.Background(), ListCharactersInput{UserID: userID, ProjectID: projectID})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_ListCharacters_ProjectNotOwned(t *testing.T) {
	t.Parallel()

	characters := &characterRepoMock{
		ListByProjectFunc: func(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Character, error) {
			t.Fatal("ListByProject should not be called when the project lookup fails")
			return nil, nil
		},
	}

	svc := newTestService(missingProjectRepo(), characters, nil, nil)
	_, err := svc.ListCharacters(context.Background(), ListCharactersInput{UserID: uuid.New(), ProjectID: uuid.New()})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_CreateCharacter_TrimsDescription(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()

	characters := &characterRepoMock{
		CreateFunc: func(ctx context.Context, gotProject uuid.UUID, name string, description *string) (*domain.Character, error) {
			assert.Equal(t, projectID, gotProject)
			assert.Equal(t, "Mira", name)
			assert.Equal(t, ptr("reluctant thief"), description)
			return &domain.Character{ID: uuid.New(), ProjectID: gotProject, Name: name, Description: description}, nil
		},
	}

	svc := newTestService(okProjectRepo(), characters, nil, nil)
	got, err := svc.CreateCharacter(context.Background(), CreateCharacterInput{
		UserID:      uuid.New(),
		ProjectID:   projectID,
		Name:        "Mira",
		Description: ptr("  reluctant thief  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Mira", got.Name)
}

func TestService_CreateCharacter_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.CreateCharacter(context.Background(), CreateCharacterInput{
		UserID:    uuid.New(),
		ProjectID: uuid.New(),
		Name:      "   ",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_UpdateCharacter_Sparse(t *testing.T) {
	t.Parallel()

	characters := &characterRepoMock{
		UpdateFunc: func(ctx context.Context, userID, characterID uuid.UUID, params domain.CharacterUpdateParams) (*domain.Character, error) {
			assert.Nil(t, params.Name)
			assert.Equal(t, ptr(""), params.Description)
			return &domain.Character{ID: characterID, Name: "Mira"}, nil
		},
	}

	svc := newTestService(nil, characters, nil, nil)
	_, err := svc.UpdateCharacter(context.Background(), UpdateCharacterInput{
		UserID:      uuid.New(),
		CharacterID: uuid.New(),
		Description: ptr(""),
	})

	require.NoError(t, err)
}

func TestService_UpdateCharacter_BlankName(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.UpdateCharacter(context.Background(), UpdateCharacterInput{
		UserID:      uuid.New(),
		CharacterID: uuid.New(),
		Name:        ptr("  "),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_DeleteCharacter_NotOwned(t *testing.T) {
	t.Parallel()

	characters := &characterRepoMock{
		DeleteFunc: func(ctx context.Context, userID, characterID uuid.UUID) error {
			return domain.ErrNotFound
		},
	}

	svc := newTestService(nil, characters, nil, nil)
	err := svc.DeleteCharacter(context.Background(), DeleteCharacterInput{UserID: uuid.New(), CharacterID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Location tests
// ---------------------------------------------------------------------------

func TestService_CreateLocation_TrimsOptionalFields(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()

	locations := &locationRepoMock{
		CreateFunc: func(ctx context.Context, gotProject uuid.UUID, l *domain.Location) (*domain.Location, error) {
			assert.Equal(t, projectID, gotProject)
			assert.Equal(t, "The Hollow", l.Name)
			assert.Equal(t, ptr("forest"), l.Type)
			assert.Equal(t, ptr("damp and quiet"), l.Atmosphere)
			assert.Nil(t, l.Description)
			assert.Nil(t, l.ImportantDetails)
			created := *l
			created.ID = uuid.New()
			created.ProjectID = gotProject
			return &created, nil
		},
	}

	svc := newTestService(okProjectRepo(), nil, locations, nil)
	got, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		UserID:     uuid.New(),
		ProjectID:  projectID,
		Name:       "The Hollow",
		Type:       ptr(" forest "),
		Atmosphere: ptr("damp and quiet"),
	})

	require.NoError(t, err)
	assert.Equal(t, "The Hollow", got.Name)
}

func TestService_CreateLocation_ProjectNotOwned(t *testing.T) {
	t.Parallel()

	svc := newTestService(missingProjectRepo(), nil, nil, nil)
	_, err := svc.CreateLocation(context.Background(), CreateLocationInput{
		UserID:    uuid.New(),
		ProjectID: uuid.New(),
		Name:      "The Hollow",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateLocation_NoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.UpdateLocation(context.Background(), UpdateLocationInput{
		UserID:     uuid.New(),
		LocationID: uuid.New(),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_UpdateLocation_ClearsAtmosphere(t *testing.T) {
	t.Parallel()

	locations := &locationRepoMock{
		UpdateFunc: func(ctx context.Context, userID, locationID uuid.UUID, params domain.LocationUpdateParams) (*domain.Location, error) {
			assert.Equal(t, ptr(""), params.Atmosphere)
			assert.Nil(t, params.Name)
			return &domain.Location{ID: locationID, Name: "The Hollow"}, nil
		},
	}

	svc := newTestService(nil, nil, locations, nil)
	_, err := svc.UpdateLocation(context.Background(), UpdateLocationInput{
		UserID:     uuid.New(),
		LocationID: uuid.New(),
		Atmosphere: ptr(""),
	})

	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Synopsis tests
// ---------------------------------------------------------------------------

func TestService_CreateSynopsis_RequiresContent(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.CreateSynopsis(context.Background(), CreateSynopsisInput{
		UserID:    uuid.New(),
		ProjectID: uuid.New(),
		Title:     "Act One",
		Content:   "   ",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_CreateSynopsis_Success(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()

	synopses := &synopsisRepoMock{
		CreateFunc: func(ctx context.Context, gotProject uuid.UUID, title, content string) (*domain.Synopsis, error) {
			assert.Equal(t, projectID, gotProject)
			assert.Equal(t, "Act One", title)
			assert.Equal(t, "Mira steals the wrong ledger.", content)
			return &domain.Synopsis{ID: uuid.New(), ProjectID: gotProject, Title: title, Content: content}, nil
		},
	}

	svc := newTestService(okProjectRepo(), nil, nil, synopses)
	got, err := svc.CreateSynopsis(context.Background(), CreateSynopsisInput{
		UserID:    uuid.New(),
		ProjectID: projectID,
		Title:     "Act One",
		Content:   "Mira steals the wrong ledger.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Act One", got.Title)
}

func TestService_UpdateSynopsis_BlankContentRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.UpdateSynopsis(context.Background(), UpdateSynopsisInput{
		UserID:     uuid.New(),
		SynopsisID: uuid.New(),
		Content:    ptr(" "),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_UpdateSynopsis_TitleOnly(t *testing.T) {
	t.Parallel()

	synopses := &synopsisRepoMock{
		UpdateFunc: func(ctx context.Context, userID, synopsisID uuid.UUID, params domain.SynopsisUpdateParams) (*domain.Synopsis, error) {
			assert.Equal(t, ptr("Act Two"), params.Title)
			assert.Nil(t, params.Content)
			return &domain.Synopsis{ID: synopsisID, Title: "Act Two"}, nil
		},
	}

	svc := newTestService(nil, nil, nil, synopses)
	got, err := svc.UpdateSynopsis(context.Background(), UpdateSynopsisInput{
		UserID:     uuid.New(),
		SynopsisID: uuid.New(),
		Title:      ptr("Act Two"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Act Two", got.Title)
}

func TestService_ListSynopses_MissingIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, nil)
	_, err := svc.ListSynopses(context.Background(), ListSynopsesInput{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)
}
