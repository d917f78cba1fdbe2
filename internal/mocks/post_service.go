package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/service"
)

// PostService is a mock of service.PostService for use with testify/mock.
type PostService struct {
	mock.Mock
}

var _ service.PostService = (*PostService)(nil)

// Create is a mock implementation of service.PostService.Create
func (m *PostService) Create(ctx context.Context, callerID uuid.UUID, title, body string) (*domain.Post, error) {
	args := m.Called(ctx, callerID, title, body)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of service.PostService.GetByID
func (m *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByUserID is a mock implementation of service.PostService.ListByUserID
func (m *PostService) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	if posts, ok := args.Get(0).([]domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of service.PostService.Update
func (m *PostService) Update(ctx context.Context, id uuid.UUID, patch domain.PostPatch) (*domain.Post, error) {
	args := m.Called(ctx, id, patch)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// AuthorizeOwner is a mock implementation of service.PostService.AuthorizeOwner
func (m *PostService) AuthorizeOwner(ctx context.Context, callerID, postID uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, callerID, postID)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of service.PostService.Delete
func (m *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
