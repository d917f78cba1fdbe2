package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/store"
)

// UserLookup finds a user by email. store.UserStore and service.UserService
// both satisfy it.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LoginService exchanges an email address for an access token. There is no
// password: knowing a registered email is enough to log in.
type LoginService struct {
	users  UserLookup
	tokens JWTService
	logger *slog.Logger
}

// NewLoginService creates a LoginService.
func NewLoginService(users UserLookup, tokens JWTService, logger *slog.Logger) (*LoginService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LoginService{
		users:  users,
		tokens: tokens,
		logger: logger.With(slog.String("component", "login_service")),
	}, nil
}

// Login returns a signed token for the user registered under email.
// Returns store.ErrUserNotFound when no such user exists.
func (s *LoginService) Login(ctx context.Context, email string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login attempt for unknown email")
			return "", err
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return token, nil
}
