package api

import (
	"log/slog"
	"net/http"

	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
	"github.com/userhub/userhub-api/internal/validation"
)

// AddressHandler handles /addresses requests.
type AddressHandler struct {
	addressService service.AddressService
	validator      *validation.Validator
	errors         *ErrorReporter
	logger         *slog.Logger
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(
	addressService service.AddressService,
	validator *validation.Validator,
	errors *ErrorReporter,
	logger *slog.Logger,
) *AddressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AddressHandler")
	}

	return &AddressHandler{
		addressService: addressService,
		validator:      validator,
		errors:         errors,
		logger:         logger.With(slog.String("component", "address_handler")),
	}
}

// Get handles GET /addresses/{userId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := lookupID(w, r, h.errors, "userId", store.ErrAddressNotFound)
	if !ok {
		return
	}

	addr, err := h.addressService.GetByUserID(r.Context(), userID)
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, addr)
}

// Create handles POST /addresses. The address always belongs to the caller.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	req, ok := bindJSON[CreateAddressRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}

	addr, err := h.addressService.Create(r.Context(), caller, req.Fields())
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, addr)
}

// Update handles PATCH /addresses/{userId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, h.validator, h.errors, "userId", "User ID")
	if !ok {
		return
	}
	req, ok := bindJSON[UpdateAddressRequest](w, r, h.validator, h.errors)
	if !ok {
		return
	}
	if err := service.EnsureSelf(caller, userID); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	addr, err := h.addressService.Update(r.Context(), userID, req.Patch())
	if err != nil {
		h.errors.Report(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, addr)
}

// Delete handles DELETE /addresses/{userId}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r, h.errors)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, h.validator, h.errors, "userId", "User ID")
	if !ok {
		return
	}
	if err := service.EnsureSelf(caller, userID); err != nil {
		h.errors.Report(w, r, err)
		return
	}

	if err := h.addressService.Delete(r.Context(), userID); err != nil {
		h.errors.Report(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
