package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/api"
	"github.com/userhub/userhub-api/internal/api/middleware"
	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/mocks"
	"github.com/userhub/userhub-api/internal/service/auth"
)

// testEnv wires the handlers with service mocks behind a router shaped
// like the production one. Bearer tokens are user IDs.
type testEnv struct {
	router    chi.Router
	users     *mocks.UserService
	addresses *mocks.AddressService
	posts     *mocks.PostService
	login     *mocks.MockLoginService
}

func newTestEnv(t *testing.T, exposeDetails bool) *testEnv {
	t.Helper()

	env := &testEnv{
		users:     new(mocks.UserService),
		addresses: new(mocks.AddressService),
		posts:     new(mocks.PostService),
		login:     &mocks.MockLoginService{},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := api.NewRequestValidator()
	reporter := api.NewErrorReporter(exposeDetails)

	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			id, err := uuid.Parse(token)
			if err != nil {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id}, nil
		},
	}
	authMW := middleware.NewAuthMiddleware(jwtService)

	userHandler := api.NewUserHandler(env.users, validator, reporter, log)
	addressHandler := api.NewAddressHandler(env.addresses, validator, reporter, log)
	postHandler := api.NewPostHandler(env.posts, validator, reporter, log)
	authHandler := api.NewAuthHandler(env.login, validator, reporter, log)

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.Login)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Get("/count", userHandler.Count)
		r.Get("/{id}", userHandler.Get)
		r.Post("/", userHandler.Create)
		r.With(authMW.Authenticate).Patch("/{id}", userHandler.Update)
		r.With(authMW.Authenticate).Delete("/{id}", userHandler.Delete)
	})
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/{userId}", addressHandler.Get)
		r.With(authMW.Authenticate).Post("/", addressHandler.Create)
		r.With(authMW.Authenticate).Patch("/{userId}", addressHandler.Update)
		r.With(authMW.Authenticate).Delete("/{userId}", addressHandler.Delete)
	})
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Get("/{id}", postHandler.Get)
		r.With(authMW.Authenticate).Post("/", postHandler.Create)
		r.With(authMW.Authenticate).Patch("/{id}", postHandler.Update)
		r.With(authMW.Authenticate).Delete("/{id}", postHandler.Delete)
	})
	env.router = r

	t.Cleanup(func() {
		env.users.AssertExpectations(t)
		env.addresses.AssertExpectations(t)
		env.posts.AssertExpectations(t)
	})
	return env
}

// do sends a request; caller may be uuid.Nil for anonymous requests.
func (e *testEnv) do(method, path, body string, caller uuid.UUID) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+caller.String())
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

type envelope[T any] struct {
	Status     string             `json:"status"`
	Data       T                  `json:"data"`
	Pagination *shared.Pagination `json:"pagination"`
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
