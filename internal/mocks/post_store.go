package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/store"
)

// PostStore is a mock of store.PostStore for use with testify/mock.
type PostStore struct {
	mock.Mock
}

var _ store.PostStore = (*PostStore)(nil)

// Create is a mock implementation of store.PostStore.Create
func (m *PostStore) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// GetByID is a mock implementation of store.PostStore.GetByID
func (m *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if post, ok := args.Get(0).(*domain.Post); ok {
		return post, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByUserID is a mock implementation of store.PostStore.ListByUserID
func (m *PostStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	args := m.Called(ctx, userID)
	if posts, ok := args.Get(0).([]domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.PostStore.Update
func (m *PostStore) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// Delete is a mock implementation of store.PostStore.Delete
func (m *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.PostStore.WithTx
func (m *PostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
