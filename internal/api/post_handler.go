package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
	"github.com/userhub/userhub-api/internal/validation"
)

// PostHandler handles /posts requests.
type PostHandler struct {
	postService service.PostService
	validator   *validation.Validator
	errors      *ErrorReporter
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(
	postService service.PostService,
	validator *validation.Validator,
	errors *ErrorReporter,
	logger *slog.Logger,
) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		postService: postService,
		validator:   validator,
		errors:      errors,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// List handles GET /posts?userId=. The query parameter is required; a value
// that is not a UUID matches no posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("userId"))
	if raw == "" {
		h.errors.Report(w, r, &validation.Error{Violations: []validation.Violation{{
			Field:   "userId",
			Rule:    "required",
			Message: "userId query parameter is required",
		}}})
		return
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithData(w, r, http.StatusOK, []domain.Post{})
		return
	}

	posts, err := h.postService.ListByUserID(r.Context(), userID)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, posts)
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := lookupID(w, r, h.errors, "id", store.ErrPostNotFound)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, post)
}

// Create handles POST /posts. The author is always the caller.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	req, ok := bindJSON[CreatePostRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}

	post, err := h.postService.Create(r.Context(), caller, req.Title, req.Body)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, post)
}

// Update handles PATCH /posts/{id}. Only the author may update a post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.validator, h.errors, "id", "Post ID")
	if !ok {
		return
	}
	req, ok := bindJSON[UpdatePostRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}
	if _, err := h.postService.AuthorizeOwner(r.Context(), caller, id); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	post, err := h.postService.Update(r.Context(), id, req.Patch())
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, post)
}

// Delete handles DELETE /posts/{id}. Only the author may delete a post.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.validator, h.errors, "id", "Post ID")
	if !ok {
		return
	}
	if _, err := h.postService.AuthorizeOwner(r.Context(), caller, id); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("post deleted via API",
		slog.String("post_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
