package main

import (
	"fmt"
	"log/slog"

	"github.com/userhub/userhub-api/internal/config"
	"github.com/userhub/userhub-api/internal/platform/logger"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the process-wide logger from the server settings
// and logs the non-secret parts of the configuration.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("trust_proxy", cfg.Server.TrustProxy))
	l.Debug("database configuration",
		slog.Bool("url_present", cfg.Database.URL != ""),
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate))
	l.Debug("auth configuration",
		slog.Bool("jwt_secret_present", cfg.Auth.JWTSecret != ""),
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	return l, nil
}
