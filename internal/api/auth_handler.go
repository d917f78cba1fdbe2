package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/validation"
)

// LoginService exchanges an email for an access token.
type LoginService interface {
	Login(ctx context.Context, email string) (string, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	loginService LoginService
	validator    *validation.Validator
	errors       *ErrorReporter
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	loginService LoginService,
	validator *validation.Validator,
	errors *ErrorReporter,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		loginService: loginService,
		validator:    validator,
		errors:       errors,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := bindJSON[LoginRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}

	token, err := h.loginService.Login(r.Context(), req.Email)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("login succeeded")
	shared.RespondWithData(w, r, http.StatusOK, AuthResponse{Token: token})
}
