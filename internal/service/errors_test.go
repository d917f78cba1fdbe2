package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      NewServiceError("user", "create", "failed to save user", errors.New("connection reset")),
			expected: "user service create failed: failed to save user: connection reset",
		},
		{
			name:     "without underlying error",
			err:      NewServiceError("post", "delete", "nothing to delete", nil),
			expected: "post service delete failed: nothing to delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := NewServiceError("address", "create", "failed", ErrNotOwned)
	assert.ErrorIs(t, err, ErrNotOwned)

	var serviceErr *ServiceError
	assert.True(t, errors.As(error(err), &serviceErr))
	assert.Equal(t, "address", serviceErr.Service)
}

func TestEnsureSelf(t *testing.T) {
	caller := uuid.New()

	assert.NoError(t, EnsureSelf(caller, caller))
	assert.ErrorIs(t, EnsureSelf(caller, uuid.New()), ErrNotOwned)
}
