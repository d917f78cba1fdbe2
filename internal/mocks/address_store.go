package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/store"
)

// AddressStore is a mock of store.AddressStore for use with testify/mock.
type AddressStore struct {
	mock.Mock
}

var _ store.AddressStore = (*AddressStore)(nil)

// Create is a mock implementation of store.AddressStore.Create
func (m *AddressStore) Create(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

// GetByUserID is a mock implementation of store.AddressStore.GetByUserID
func (m *AddressStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	args := m.Called(ctx, userID)
	if addr, ok := args.Get(0).(*domain.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.AddressStore.Update
func (m *AddressStore) Update(ctx context.Context, address *domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

// DeleteByUserID is a mock implementation of store.AddressStore.DeleteByUserID
func (m *AddressStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// WithTx is a mock implementation of store.AddressStore.WithTx
func (m *AddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return m
}
