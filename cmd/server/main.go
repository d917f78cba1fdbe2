// Package main implements the entry point for the UserHub API server, which
// manages users, their postal addresses and their posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/userhub/userhub-api/internal/platform/postgres"
)

// main is the entry point for the userhub-api server.
// With -migrate it runs a single migration command and exits; otherwise it
// wires the application and serves HTTP until SIGINT or SIGTERM.
func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, reset, status, version) and exit",
	)
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Printf("userhub-api: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, and then either
// executes migrateCmd or starts the server.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer closeDB(db, logger)
		return postgres.Migrate(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
			closeDB(db, logger)
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		closeDB(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	logger.Info("starting userhub-api",
		slog.Int("port", cfg.Server.Port),
		slog.String("environment", cfg.Server.Environment))
	return app.Run(ctx)
}
