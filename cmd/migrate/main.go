// Command migrate applies goose SQL migrations from ./migrations.
//
// Usage: migrate [up|down|status] (default up).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stepspeak-backend/internal/app"
	"github.com/heartmarshall/stepspeak-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close() //nolint:errcheck

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set goose dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var gooseErr error
	switch command {
	case "up":
		gooseErr = goose.UpContext(ctx, db, "migrations")
	case "down":
		gooseErr = goose.DownContext(ctx, db, "migrations")
	case "status":
		gooseErr = goose.StatusContext(ctx, db, "migrations")
	default:
		logger.Error("unknown command", slog.String("command", command))
		os.Exit(1)
	}

	if gooseErr != nil {
		logger.Error("migration failed",
			slog.String("command", command),
			slog.String("error", gooseErr.Error()),
		)
		os.Exit(1)
	}

	logger.Info("migration completed", slog.String("command", command))
}
