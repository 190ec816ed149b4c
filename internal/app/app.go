// Package app assembles the application: configuration, logging, database
// pool, repositories, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/fablecraft/fablecraft-backend/internal/adapter/postgres"
	chapterrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/chapter"
	characterrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/character"
	locationrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/location"
	projectrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/project"
	scenerepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/scene"
	synopsisrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/synopsis"
	userrepo "github.com/fablecraft/fablecraft-backend/internal/adapter/postgres/user"
	"github.com/fablecraft/fablecraft-backend/internal/config"
	"github.com/fablecraft/fablecraft-backend/internal/service/manuscript"
	"github.com/fablecraft/fablecraft-backend/internal/service/project"
	"github.com/fablecraft/fablecraft-backend/internal/service/user"
	"github.com/fablecraft/fablecraft-backend/internal/service/worldbook"
	"github.com/fablecraft/fablecraft-backend/internal/transport/middleware"
	"github.com/fablecraft/fablecraft-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	projects := projectrepo.New(pool)
	chapters := chapterrepo.New(pool)
	scenes := scenerepo.New(pool)
	characters := characterrepo.New(pool)
	locations := locationrepo.New(pool)
	synopses := synopsisrepo.New(pool)
	users := userrepo.New(pool)

	projectSvc := project.NewService(logger, projects)
	manuscriptSvc := manuscript.NewService(logger, projects, chapters, scenes, txm)
	worldbookSvc := worldbook.NewService(logger, projects, characters, locations, synopses)
	userSvc := user.NewService(logger, users)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion(), cfg.AutoSave),
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
		mux.MiddlewareFunc(middleware.Logger(logger)),
		mux.MiddlewareFunc(middleware.CORS(cfg.CORS)),
		mux.MiddlewareFunc(limiter.Limit(cfg.Server.RateLimitPerMin)),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
