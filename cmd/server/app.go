package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	apiMiddleware "github.com/userhub/userhub-api/internal/api/middleware"
	"github.com/userhub/userhub-api/internal/config"
	"github.com/userhub/userhub-api/internal/platform/postgres"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/service/auth"
	"github.com/userhub/userhub-api/internal/store"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "userhub"

// limiterCleanupInterval is both the sweep period and the idle age after
// which a client's limiter is dropped.
const limiterCleanupInterval = 5 * time.Minute

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore    store.UserStore
	addressStore store.AddressStore
	postStore    store.PostStore

	// Service interfaces
	jwtService     auth.JWTService
	loginService   *auth.LoginService
	userService    service.UserService
	addressService service.AddressService
	postService    service.PostService

	// HTTP infrastructure
	metrics     *apiMiddleware.Metrics
	rateLimiter *apiMiddleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.addressStore = postgres.NewPostgresAddressStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)
	transactor := store.NewDBTransactor(db)

	app.userService, err = service.NewUserService(
		app.userStore,
		transactor,
		service.PageLimits{
			DefaultSize: cfg.Pagination.DefaultPageSize,
			MaxSize:     cfg.Pagination.MaxPageSize,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.addressService, err = service.NewAddressService(app.addressStore, transactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create address service: %w", err)
	}

	app.postService, err = service.NewPostService(app.postStore, transactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.loginService, err = auth.NewLoginService(app.userService, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create login service: %w", err)
	}

	app.metrics = apiMiddleware.NewMetrics(metricsNamespace)
	app.metrics.Registry().MustRegister(collectors.NewDBStatsCollector(db, "postgres"))

	if cfg.RateLimit.Enabled {
		app.rateLimiter = apiMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		logger.Info("rate limiting enabled",
			slog.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst))
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.rateLimiter != nil {
		app.rateLimiter.StartCleanup(runCtx, limiterCleanupInterval, app.logger)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(runCtx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
