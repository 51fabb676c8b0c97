package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	combinationrepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/combination"
	userrepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/user"
	wordrepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/word"
	wordgrouprepo "github.com/vnest-fi/vnest-backend/internal/adapter/postgres/wordgroup"
	"github.com/vnest-fi/vnest-backend/internal/app/importer"
	"github.com/vnest-fi/vnest-backend/internal/auth"
	"github.com/vnest-fi/vnest-backend/internal/config"
	authsvc "github.com/vnest-fi/vnest-backend/internal/service/auth"
	combinationsvc "github.com/vnest-fi/vnest-backend/internal/service/combination"
	wordsvc "github.com/vnest-fi/vnest-backend/internal/service/word"
	"github.com/vnest-fi/vnest-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, applies migrations, bootstraps
// users, runs the one-time CSV import, and serves the REST API until the
// context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	words := wordrepo.New(pool)
	groups := wordgrouprepo.New(pool)
	combinations := combinationrepo.New(pool)
	users := userrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager)
	wordService := wordsvc.NewService(logger, words, groups)
	combinationService := combinationsvc.NewService(logger, combinations, words, txManager)

	if err := authService.Bootstrap(ctx, cfg.Auth.Users); err != nil {
		return fmt.Errorf("bootstrap users: %w", err)
	}

	imp := importer.New(logger, words, groups, combinations, cfg.Import)
	if _, err := imp.Run(ctx); err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	router := rest.NewRouter(logger, cfg.CORS, authService, rest.Handlers{
		Auth:         rest.NewAuthHandler(authService, logger),
		Words:        rest.NewWordHandler(wordService, logger),
		Combinations: rest.NewCombinationHandler(combinationService, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")

	return nil
}
