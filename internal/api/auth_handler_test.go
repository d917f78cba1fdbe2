package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/api"
	"github.com/userhub/userhub-api/internal/store"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		token      string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "token issued",
			body:       `{"email":" ada@example.com "}`,
			token:      "signed.jwt.token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown email",
			body:       `{"email":"nobody@example.com"}`,
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    api.MsgUserNotFound,
		},
		{
			name:       "invalid email",
			body:       `{"email":"nobody"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    api.MsgInvalidInput,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantMsg:    api.MsgInvalidRequestFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			var gotEmail string
			env.login.LoginFn = func(_ context.Context, email string) (string, error) {
				gotEmail = email
				return tt.token, tt.err
			}

			w := env.do(http.MethodPost, "/auth/login", tt.body, uuid.Nil)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
				return
			}
			assert.Equal(t, "ada@example.com", gotEmail)
			assert.Equal(t, tt.token, decodeData[api.AuthResponse](t, w).Data.Token)
		})
	}
}
