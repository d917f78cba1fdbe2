package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/mocks"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

var testLimits = service.PageLimits{DefaultSize: 10, MaxSize: 100}

func newUserService(t *testing.T, userStore *mocks.UserStore) service.UserService {
	t.Helper()
	svc, err := service.NewUserService(userStore, &mocks.Transactor{}, testLimits, testLogger())
	require.NoError(t, err)
	return svc
}

func existingUser() *domain.User {
	created := time.Now().Add(-24 * time.Hour).UTC()
	return &domain.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNewUserService_NilDependencies(t *testing.T) {
	_, err := service.NewUserService(nil, &mocks.Transactor{}, testLimits, testLogger())
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewUserService(&mocks.UserStore{}, nil, testLimits, testLogger())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create(t *testing.T) {
	input := service.CreateUserInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: strPtr("+4412345678901"),
	}

	t.Run("success", func(t *testing.T) {
		userStore := new(mocks.UserStore)
		userStore.On("EmailExists", mock.Anything, input.Email, uuid.Nil).Return(false, nil)
		userStore.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.FirstName == "Ada" && u.ID != uuid.Nil
		})).Return(nil)

		user, err := newUserService(t, userStore).Create(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
		assert.Equal(t, input.Email, user.Email)
		require.NotNil(t, user.PhoneNumber)
		assert.Equal(t, "+4412345678901", *user.PhoneNumber)
		assert.False(t, user.CreatedAt.IsZero())
		userStore.AssertExpectations(t)
	})

	t.Run("email already registered", func(t *testing.T) {
		userStore := new(mocks.UserStore)
		userStore.On("EmailExists", mock.Anything, input.Email, uuid.Nil).Return(true, nil)

		_, err := newUserService(t, userStore).Create(context.Background(), input)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique constraint race", func(t *testing.T) {
		userStore := new(mocks.UserStore)
		userStore.On("EmailExists", mock.Anything, input.Email, uuid.Nil).Return(false, nil)
		userStore.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		_, err := newUserService(t, userStore).Create(context.Background(), input)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("store failure", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		userStore := new(mocks.UserStore)
		userStore.On("EmailExists", mock.Anything, input.Email, uuid.Nil).Return(false, dbErr)

		_, err := newUserService(t, userStore).Create(context.Background(), input)
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)

		var serviceErr *service.ServiceError
		assert.ErrorAs(t, err, &serviceErr)
	})

	t.Run("transaction cannot begin", func(t *testing.T) {
		beginErr := errors.New("pool exhausted")
		svc, err := service.NewUserService(
			new(mocks.UserStore),
			&mocks.Transactor{BeginErr: beginErr},
			testLimits,
			testLogger(),
		)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, beginErr)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("merges supplied fields only", func(t *testing.T) {
		user := existingUser()
		created := user.CreatedAt
		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userStore.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == user.ID && u.FirstName == "Ada" && u.LastName == "Byron"
		})).Return(nil)

		updated, err := newUserService(t, userStore).
			Update(context.Background(), user.ID, domain.UserPatch{LastName: strPtr("Byron")})
		require.NoError(t, err)

		assert.Equal(t, "Byron", updated.LastName)
		assert.Equal(t, "ada@example.com", updated.Email)
		assert.Equal(t, created, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created))
		userStore.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		user := existingUser()
		other := existingUser()
		other.Email = "countess@example.com"

		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userStore.On("GetByEmail", mock.Anything, other.Email).Return(other, nil)

		_, err := newUserService(t, userStore).
			Update(context.Background(), user.ID, domain.UserPatch{Email: strPtr(other.Email)})
		assert.ErrorIs(t, err, store.ErrEmailExists)
		userStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		user := existingUser()
		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userStore.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := newUserService(t, userStore).
			Update(context.Background(), user.ID, domain.UserPatch{Email: strPtr(user.Email)})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", updated.Email)
		userStore.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("new unused email", func(t *testing.T) {
		user := existingUser()
		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userStore.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, store.ErrUserNotFound)
		userStore.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := newUserService(t, userStore).
			Update(context.Background(), user.ID, domain.UserPatch{Email: strPtr("new@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		id := uuid.New()
		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, id).Return(nil, store.ErrUserNotFound)

		_, err := newUserService(t, userStore).
			Update(context.Background(), id, domain.UserPatch{FirstName: strPtr("Ada")})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		user := existingUser()
		dbErr := errors.New("disk full")
		userStore := new(mocks.UserStore)
		userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userStore.On("Update", mock.Anything, mock.Anything).Return(dbErr)

		_, err := newUserService(t, userStore).
			Update(context.Background(), user.ID, domain.UserPatch{FirstName: strPtr("Augusta")})
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to update user")
	})
}

func TestUserService_List(t *testing.T) {
	tests := []struct {
		name         string
		pageNumber   int
		pageSize     int
		expectedPage domain.PageRequest
	}{
		{"second page", 1, 10, domain.PageRequest{PageNumber: 1, PageSize: 10}},
		{"default size", 0, 0, domain.PageRequest{PageNumber: 0, PageSize: 10}},
		{"clamped size", 2, 500, domain.PageRequest{PageNumber: 2, PageSize: 100}},
		{"negative page", -1, 5, domain.PageRequest{PageNumber: 0, PageSize: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := []domain.User{*existingUser(), *existingUser()}
			userStore := new(mocks.UserStore)
			userStore.On("List", mock.Anything, tt.expectedPage).Return(users, nil)

			page, err := newUserService(t, userStore).List(context.Background(), tt.pageNumber, tt.pageSize)
			require.NoError(t, err)

			assert.Equal(t, users, page.Items)
			assert.Equal(t, tt.expectedPage.PageNumber, page.PageNumber)
			assert.Equal(t, tt.expectedPage.PageSize, page.PageSize)
			userStore.AssertExpectations(t)
		})
	}

	t.Run("offset follows page times size", func(t *testing.T) {
		userStore := new(mocks.UserStore)
		userStore.On("List", mock.Anything, mock.MatchedBy(func(p domain.PageRequest) bool {
			return p.Offset() == 10 && p.Limit() == 10
		})).Return([]domain.User{}, nil)

		_, err := newUserService(t, userStore).List(context.Background(), 1, 10)
		require.NoError(t, err)
		userStore.AssertExpectations(t)
	})
}

func TestUserService_GetAndCount(t *testing.T) {
	user := existingUser()
	missing := uuid.New()

	userStore := new(mocks.UserStore)
	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userStore.On("GetByID", mock.Anything, missing).Return(nil, store.ErrUserNotFound)
	userStore.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, store.ErrUserNotFound)
	userStore.On("Count", mock.Anything).Return(int64(15), nil)

	svc := newUserService(t, userStore)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.GetByID(ctx, missing)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = svc.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), count)
}

func TestUserService_Delete(t *testing.T) {
	id := uuid.New()
	missing := uuid.New()

	userStore := new(mocks.UserStore)
	userStore.On("Delete", mock.Anything, id).Return(nil)
	userStore.On("Delete", mock.Anything, missing).Return(store.ErrUserNotFound)

	svc := newUserService(t, userStore)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), missing), store.ErrUserNotFound)
}
