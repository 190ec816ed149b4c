//go:build e2e

package e2e_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres"
	chapterrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/chapter"
	characterrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/character"
	locationrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/location"
	projectrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/project"
	scenerepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/scene"
	synopsisrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/synopsis"
	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/user"
	"github.com/fablecraft/fablecraft-backend/internal/config"
	"github.com/fablecraft/fablecraft-backend/internal/service/manuscript"
	"github.com/fablecraft/fablecraft-backend/internal/service/project"
	"github.com/fablecraft/fablecraft-backend/internal/service/user"
	"github.com/fablecraft/fablecraft-backend/internal/service/worldbook"
	"github.com/fablecraft/fablecraft-backend/internal/transport/middleware"
	"github.com/fablecraft/fablecraft-backend/internal/transport/rest"
	"github.com/fablecraft/fablecraft-backend/pkg/client"
	"github.com/gorilla/mux"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// 3. Repositories.
	txm := postgres.NewTxManager(pool)
	projects := projectrepo.New(pool)
	chapters := chapterrepo.New(pool)
	scenes := scenerepo.New(pool)
	characters := characterrepo.New(pool)
	locations := locationrepo.New(pool)
	synopses := synopsisrepo.New(pool)
	users := userrepo.New(pool)

	// 4. Services.
	projectSvc := project.NewService(logger, projects)
	manuscriptSvc := manuscript.NewService(logger, projects, chapters, scenes, txm)
	worldbookSvc := worldbook.NewService(logger, projects, characters, locations, synopses)
	userSvc := user.NewService(logger, users)

	// 5. Router with the production middleware chain, minus the rate
	// limiter so scenario tests can hammer the API freely.
	autosaveCfg := config.AutoSaveConfig{
		DebounceDelay: 2 * time.Second,
		FlushInterval: 30 * time.Second,
	}

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, "e2e-test", autosaveCfg),
		User:      rest.NewUserHandler(userSvc, logger),
		Project:   rest.NewProjectHandler(projectSvc, logger),
		Chapter:   rest.NewChapterHandler(manuscriptSvc, logger),
		Scene:     rest.NewSceneHandler(manuscriptSvc, logger),
		Character: rest.NewCharacterHandler(worldbookSvc, logger),
		Location:  rest.NewLocationHandler(worldbookSvc, logger),
		Synopsis:  rest.NewSynopsisHandler(worldbookSvc, logger),
	},
		mux.MiddlewareFunc(middleware.RequestID),
		mux.MiddlewareFunc(middleware.Recovery(logger)),
		mux.MiddlewareFunc(middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: false,
			MaxAge:           86400,
		})),
	)

	// 6. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:  srv.URL,
		Pool: pool,
	}
}

// ---------------------------------------------------------------------------
// newUserClient registers a fresh account through the API and returns a
// typed client bound to it.
// ---------------------------------------------------------------------------

func newUserClient(t *testing.T, ts *testServer) *client.Client {
	t.Helper()

	suffix := uuid.New().String()[:8]
	bootstrap := client.New(ts.URL, uuid.Nil)
	u, err := bootstrap.CreateUser(context.Background(), client.CreateUserParams{
		Email:    fmt.Sprintf("e2e-%s@example.com", suffix),
		Username: "e2e-" + suffix,
		Name:     "E2E Writer",
	})
	require.NoError(t, err)

	userID, err := uuid.Parse(u.ID)
	require.NoError(t, err)
	return client.New(ts.URL, userID)
}

// countRows counts rows in a table matching one equality predicate.
func countRows(t *testing.T, pool *pgxpool.Pool, table, column, value string) int {
	t.Helper()

	var n int
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s = $1", table, column)
	err := pool.QueryRow(context.Background(), query, value).Scan(&n)
	require.NoError(t, err)
	return n
}

// getJSON performs a raw GET against the server, for endpoints the typed
// client does not cover.
func getJSON(t *testing.T, ts *testServer, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	return resp
}

func ptr[T any](v T) *T { return &v }
