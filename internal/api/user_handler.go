package api

import (
	"log/slog"
	"net/http"

	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
	"github.com/userhub/userhub-api/internal/validation"
)

// UserHandler handles /users requests.
type UserHandler struct {
	userService service.UserService
	validator   *validation.Validator
	errors      *ErrorReporter
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService service.UserService,
	validator *validation.Validator,
	errors *ErrorReporter,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		validator:   validator,
		errors:      errors,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users?pageNumber=&pageSize=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.userService.List(r.Context(), queryInt(r, "pageNumber"), queryInt(r, "pageSize"))
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, page.Items, shared.Pagination{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	})
}

// Count handles GET /users/count.
func (h *UserHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.userService.Count(r.Context())
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, CountResponse{Count: count})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := lookupID(w, r, h.errors, "id", store.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := bindJSON[CreateUserRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("user created via API",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, user)
}

// Update handles PATCH /users/{id}. Callers may only update themselves.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.validator, h.errors, "id", "User ID")
	if !ok {
		return
	}
	req, ok := bindJSON[UpdateUserRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}
	if err := service.EnsureSelf(caller, id); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	user, err := h.userService.Update(r.Context(), id, req.Patch())
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}. Callers may only delete themselves.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.validator, h.errors, "id", "User ID")
	if !ok {
		return
	}
	if err := service.EnsureSelf(caller, id); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.errors.Report(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
