package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/domain"
)

// AddressStore defines the interface for address persistence.
// Addresses are keyed by their owner: a user has at most one.
type AddressStore interface {
	// Create saves a new address.
	// Returns ErrAddressExists if the user already has one.
	// Returns ErrUserNotFound if the owning user does not exist.
	Create(ctx context.Context, address *domain.Address) error

	// GetByUserID retrieves the address owned by userID.
	// Returns ErrAddressNotFound if the user has none.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error)

	// Update persists every mutable field of the address.
	// Returns ErrAddressNotFound if it does not exist.
	Update(ctx context.Context, address *domain.Address) error

	// DeleteByUserID removes the address owned by userID.
	// Returns ErrAddressNotFound if the user has none.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new AddressStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AddressStore
}
