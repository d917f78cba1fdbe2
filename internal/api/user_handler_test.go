package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/api"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
)

func sampleUser() *domain.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t, false)
		user := sampleUser()
		env.users.On("Create", mock.Anything, service.CreateUserInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		}).Return(user, nil)

		w := env.do(http.MethodPost, "/users",
			`{"firstName":"  Ada ","lastName":"Lovelace","email":"ada@example.com"}`, uuid.Nil)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeData[domain.User](t, w)
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, user.ID, body.Data.ID)
		assert.Equal(t, "Ada", body.Data.FirstName)
	})

	t.Run("validation failures are listed", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPost, "/users",
			`{"firstName":"A","lastName":"Lovelace","email":"not-an-email","phoneNumber":"12"}`, uuid.Nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, api.MsgInvalidInput, body.Message)
		assert.Contains(t, body.Details, "First name must be at least 2 characters long")
		assert.Contains(t, body.Details, "Invalid email format")
		assert.Contains(t, body.Details, "Phone number must be 10-15 digits")
		env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Create", mock.Anything, mock.Anything).Return(nil, store.ErrEmailExists)

		w := env.do(http.MethodPost, "/users",
			`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, uuid.Nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.MsgEmailExists, decodeError(t, w).Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPost, "/users", `{"firstName":`, uuid.Nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.MsgInvalidRequestFormat, decodeError(t, w).Message)
	})
}

func TestUserHandler_Get(t *testing.T) {
	env := newTestEnv(t, false)
	user := sampleUser()
	missing := uuid.New()
	env.users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	env.users.On("GetByID", mock.Anything, missing).Return(nil, store.ErrUserNotFound)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"found", "/users/" + user.ID.String(), http.StatusOK, ""},
		{"unknown id", "/users/" + missing.String(), http.StatusNotFound, api.MsgUserNotFound},
		{"malformed id", "/users/not-a-uuid", http.StatusNotFound, api.MsgUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, tt.path, "", uuid.Nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
				return
			}
			assert.Equal(t, user.Email, decodeData[domain.User](t, w).Data.Email)
		})
	}
}

func TestUserHandler_List(t *testing.T) {
	tests := []struct {
		name                 string
		query                string
		pageNumber, pageSize int
	}{
		{"explicit page", "?pageNumber=1&pageSize=10", 1, 10},
		{"defaults", "", 0, 0},
		{"non-numeric values", "?pageNumber=abc&pageSize=x", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			users := []domain.User{*sampleUser(), *sampleUser()}
			env.users.On("List", mock.Anything, tt.pageNumber, tt.pageSize).Return(domain.Page[domain.User]{
				Items:      users,
				PageNumber: tt.pageNumber,
				PageSize:   10,
			}, nil)

			w := env.do(http.MethodGet, "/users"+tt.query, "", uuid.Nil)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			body := decodeData[[]domain.User](t, w)
			assert.Len(t, body.Data, 2)
			require.NotNil(t, body.Pagination)
			assert.Equal(t, tt.pageNumber, body.Pagination.PageNumber)
			assert.Equal(t, 10, body.Pagination.PageSize)
		})
	}
}

func TestUserHandler_Count(t *testing.T) {
	env := newTestEnv(t, false)
	env.users.On("Count", mock.Anything).Return(int64(15), nil)

	w := env.do(http.MethodGet, "/users/count", "", uuid.Nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(15), decodeData[api.CountResponse](t, w).Data.Count)
}

func TestUserHandler_Update(t *testing.T) {
	user := sampleUser()

	t.Run("self update", func(t *testing.T) {
		env := newTestEnv(t, false)
		updated := *user
		updated.LastName = "Byron"
		env.users.On("Update", mock.Anything, user.ID, mock.MatchedBy(func(p domain.UserPatch) bool {
			return p.LastName != nil && *p.LastName == "Byron" && p.FirstName == nil
		})).Return(&updated, nil)

		w := env.do(http.MethodPatch, "/users/"+user.ID.String(), `{"lastName":"Byron"}`, user.ID)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Byron", decodeData[domain.User](t, w).Data.LastName)
	})

	t.Run("uppercase id", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Update", mock.Anything, user.ID, mock.Anything).Return(user, nil)

		w := env.do(http.MethodPatch, "/users/"+strings.ToUpper(user.ID.String()), `{"firstName":"Bob"}`, user.ID)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		env.users.AssertCalled(t, "Update", mock.Anything, user.ID, mock.Anything)
	})

	t.Run("null phone clears number", func(t *testing.T) {
		env := newTestEnv(t, false)
		cleared := *user
		cleared.PhoneNumber = nil
		env.users.On("Update", mock.Anything, user.ID, mock.MatchedBy(func(p domain.UserPatch) bool {
			return p.PhoneNumber != nil && *p.PhoneNumber == "" && p.FirstName == nil
		})).Return(&cleared, nil)

		w := env.do(http.MethodPatch, "/users/"+user.ID.String(), `{"phoneNumber":null}`, user.ID)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Nil(t, decodeData[domain.User](t, w).Data.PhoneNumber)
	})

	t.Run("empty update", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPatch, "/users/"+user.ID.String(), `{}`, user.ID)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "At least one field must be provided")
	})

	t.Run("blank field", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPatch, "/users/"+user.ID.String(), `{"firstName":"   "}`, user.ID)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "First name cannot be empty")
	})

	t.Run("another user", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPatch, "/users/"+uuid.New().String(), `{"lastName":"Byron"}`, user.ID)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, api.MsgForbidden, decodeError(t, w).Message)
		env.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPatch, "/users/123", `{"lastName":"Byron"}`, user.ID)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid User ID format", decodeError(t, w).Details)
	})

	t.Run("no token", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodPatch, "/users/"+user.ID.String(), `{"lastName":"Byron"}`, uuid.Nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, api.MsgUnauthorized, decodeError(t, w).Message)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	user := sampleUser()

	t.Run("self delete", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Delete", mock.Anything, user.ID).Return(nil)

		w := env.do(http.MethodDelete, "/users/"+user.ID.String(), "", user.ID)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("another user", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(http.MethodDelete, "/users/"+uuid.New().String(), "", user.ID)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("internal details only in development", func(t *testing.T) {
		for _, expose := range []bool{false, true} {
			env := newTestEnv(t, expose)
			env.users.On("Delete", mock.Anything, user.ID).Return(errors.New("connection reset"))

			w := env.do(http.MethodDelete, "/users/"+user.ID.String(), "", user.ID)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, api.MsgInternal, body.Message)
			if expose {
				assert.NotEmpty(t, body.Details)
			} else {
				assert.Empty(t, body.Details)
			}
		}
	})
}
