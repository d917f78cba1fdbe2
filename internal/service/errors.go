package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common service errors. Expected conditions are returned as sentinels (or as
// the store sentinels they wrap); unexpected failures are wrapped in
// ServiceError so callers can still reach the cause with errors.Is/errors.As.
var (
	// ErrNotOwned indicates a resource belongs to a different user than the
	// one making the request. The API layer maps it to 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")
)

// ServiceError is a custom error type for unexpected service failures.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// EnsureSelf returns ErrNotOwned unless the caller is the target user.
func EnsureSelf(callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		return ErrNotOwned
	}
	return nil
}
