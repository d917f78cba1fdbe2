package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/service"
)

// UserService is a mock of service.UserService for use with testify/mock.
type UserService struct {
	mock.Mock
}

var _ service.UserService = (*UserService)(nil)

// Create is a mock implementation of service.UserService.Create
func (m *UserService) Create(ctx context.Context, input service.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of service.UserService.Update
func (m *UserService) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of service.UserService.GetByID
func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of service.UserService.GetByEmail
func (m *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of service.UserService.List
func (m *UserService) List(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.User], error) {
	args := m.Called(ctx, pageNumber, pageSize)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}

// Count is a mock implementation of service.UserService.Count
func (m *UserService) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Delete is a mock implementation of service.UserService.Delete
func (m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
