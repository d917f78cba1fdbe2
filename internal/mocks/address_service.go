package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/service"
)

// AddressService is a mock of service.AddressService for use with testify/mock.
type AddressService struct {
	mock.Mock
}

var _ service.AddressService = (*AddressService)(nil)

// Create is a mock implementation of service.AddressService.Create
func (m *AddressService) Create(
	ctx context.Context,
	callerID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	args := m.Called(ctx, callerID, fields)
	if addr, ok := args.Get(0).(*domain.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUserID is a mock implementation of service.AddressService.GetByUserID
func (m *AddressService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	args := m.Called(ctx, userID)
	if addr, ok := args.Get(0).(*domain.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of service.AddressService.Update
func (m *AddressService) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AddressPatch,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, patch)
	if addr, ok := args.Get(0).(*domain.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of service.AddressService.Delete
func (m *AddressService) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
