package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/store"
)

type stubLookup map[string]*domain.User

func (s stubLookup) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

type failingLookup struct{ err error }

func (f failingLookup) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, f.err
}

func TestLoginService_Login(t *testing.T) {
	jwtSvc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Email: "ada@example.com"}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewLoginService(stubLookup{user.Email: user}, jwtSvc, log)
	require.NoError(t, err)

	t.Run("token resolves to the user", func(t *testing.T) {
		token, err := svc.Login(context.Background(), user.Email)
		require.NoError(t, err)

		claims, err := jwtSvc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		failing, err := NewLoginService(failingLookup{err: dbErr}, jwtSvc, log)
		require.NoError(t, err)

		_, err = failing.Login(context.Background(), user.Email)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestNewLoginService_NilDependencies(t *testing.T) {
	jwtSvc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = NewLoginService(nil, jwtSvc, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewLoginService(stubLookup{}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
