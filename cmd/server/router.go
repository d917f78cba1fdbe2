package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/userhub/userhub-api/internal/api"
	apiMiddleware "github.com/userhub/userhub-api/internal/api/middleware"
	"github.com/userhub/userhub-api/internal/api/shared"
)

// healthPingTimeout bounds the database check behind /health.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	if app.config.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Instrument)
	if app.rateLimiter != nil {
		r.Use(app.rateLimiter.Handler)
	}

	validator := api.NewRequestValidator()
	errorReporter := api.NewErrorReporter(app.config.Server.IsDevelopment())

	authHandler := api.NewAuthHandler(app.loginService, validator, errorReporter, app.logger)
	userHandler := api.NewUserHandler(app.userService, validator, errorReporter, app.logger)
	addressHandler := api.NewAddressHandler(app.addressService, validator, errorReporter, app.logger)
	postHandler := api.NewPostHandler(app.postService, validator, errorReporter, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)

		r.Get("/users", userHandler.List)
		r.Get("/users/count", userHandler.Count)
		r.Get("/users/{id}", userHandler.Get)
		r.Post("/users", userHandler.Create)

		r.Get("/addresses/{userId}", addressHandler.Get)

		r.Get("/posts", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Patch("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Post("/addresses", addressHandler.Create)
			r.Patch("/addresses/{userId}", addressHandler.Update)
			r.Delete("/addresses/{userId}", addressHandler.Delete)

			r.Post("/posts", postHandler.Create)
			r.Patch("/posts/{id}", postHandler.Update)
			r.Delete("/posts/{id}", postHandler.Delete)
		})
	})

	r.Get("/health", app.handleHealth)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}

// handleHealth reports whether the server can reach its database.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, HealthStatus{Status: "ok", Database: "ok"})
}
