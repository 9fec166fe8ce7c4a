package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres"
	exerciserepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/exercise"
	userrepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/stepspeak-backend/internal/adapter/provider/genapi"
	"github.com/heartmarshall/stepspeak-backend/internal/auth"
	"github.com/heartmarshall/stepspeak-backend/internal/config"
	authservice "github.com/heartmarshall/stepspeak-backend/internal/service/auth"
	"github.com/heartmarshall/stepspeak-backend/internal/service/exercise"
	"github.com/heartmarshall/stepspeak-backend/internal/service/stats"
	"github.com/heartmarshall/stepspeak-backend/internal/service/user"
	"github.com/heartmarshall/stepspeak-backend/internal/service/words"
	"github.com/heartmarshall/stepspeak-backend/internal/transport/middleware"
	"github.com/heartmarshall/stepspeak-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until ctx
// is cancelled.
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

	users := userrepo.New(pool)
	wordsRepo := wordrepo.New(pool)
	exercises := exerciserepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	generator := genapi.NewClientWithURL(cfg.Generator.APIKey, cfg.Generator.BaseURL, cfg.Generator.Model, logger)
	if !generator.Enabled() {
		logger.Warn("generator API key not set, enrichment degrades to placeholders")
	}

	authSvc := authservice.NewService(logger, users, wordsRepo, jwtManager, txManager, cfg.Auth)
	wordsSvc := words.NewService(logger, wordsRepo, users, generator, txManager, cfg.Generator, cfg.Limits)
	exerciseSvc := exercise.NewService(logger, users, wordsRepo, exercises, txManager, cfg.Limits)
	statsSvc := stats.NewService(logger, users, wordsRepo, exercises)
	userSvc := user.NewService(logger, users, wordsRepo)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rateLimiter.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authSvc, logger),
		Users:       rest.NewUsersHandler(userSvc, logger),
		Words:       rest.NewWordsHandler(wordsSvc, logger),
		Exercises:   rest.NewExercisesHandler(exerciseSvc, logger),
		Stats:       rest.NewStatsHandler(statsSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		RateLimiter: rateLimiter,
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
