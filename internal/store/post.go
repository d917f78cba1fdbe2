package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/domain"
)

// PostStore defines the interface for post persistence.
type PostStore interface {
	// Create saves a new post.
	// Returns ErrUserNotFound if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its ID.
	// Returns ErrPostNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// ListByUserID returns every post authored by userID, newest first.
	// An author with no posts yields an empty slice, not an error.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)

	// Update persists title, body and updated_at of an existing post.
	// Returns ErrPostNotFound if it does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post.
	// Returns ErrPostNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
