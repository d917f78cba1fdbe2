package api

import (
	"errors"
	"net/http"

	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/redact"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/service/auth"
	"github.com/userhub/userhub-api/internal/store"
	"github.com/userhub/userhub-api/internal/validation"
)

// ErrInvalidRequestFormat marks request bodies that are not valid JSON for
// the target type.
var ErrInvalidRequestFormat = errors.New("invalid request format")

// Client-facing messages.
const (
	MsgInvalidInput         = "Invalid input data"
	MsgInvalidRequestFormat = "Invalid request format"
	MsgUnauthorized         = "Unauthorized access"
	MsgForbidden            = "Forbidden"
	MsgInternal             = "Internal server error"
	MsgUserNotFound         = "User not found"
	MsgAddressNotFound      = "Address not found"
	MsgPostNotFound         = "Post not found"
	MsgNotFound             = "Resource not found"
	MsgEmailExists          = "User already exists with this email"
	MsgAddressExists        = "User already has an address"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequestFormat),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Uniqueness conflicts are reported as bad input.
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgInternal
	case errors.Is(err, ErrInvalidRequestFormat):
		return MsgInvalidRequestFormat
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidInput
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return MsgUnauthorized
	case errors.Is(err, service.ErrNotOwned):
		return MsgForbidden
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrAddressNotFound):
		return MsgAddressNotFound
	case errors.Is(err, store.ErrPostNotFound):
		return MsgPostNotFound
	case errors.Is(err, store.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, store.ErrAddressExists):
		return MsgAddressExists
	default:
		return MsgInternal
	}
}

// ErrorReporter turns handler errors into error responses.
type ErrorReporter struct {
	exposeInternalDetails bool
}

// NewErrorReporter creates an ErrorReporter. When exposeInternalDetails is
// set, 500 responses carry the redacted error text in details; it is meant
// for development only.
func NewErrorReporter(exposeInternalDetails bool) *ErrorReporter {
	return &ErrorReporter{exposeInternalDetails: exposeInternalDetails}
}

// Report writes the error response for err and logs it.
func (e *ErrorReporter) Report(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		opts = append(opts, shared.WithDetails(validationErr.Error()))
	case errors.Is(err, domain.ErrValidation):
		opts = append(opts, shared.WithDetails(redact.Error(err)))
	case status == http.StatusInternalServerError && e.exposeInternalDetails:
		opts = append(opts, shared.WithDetails(redact.Error(err)))
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
