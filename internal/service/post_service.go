package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/store"
)

// PostService manages posts authored by users.
type PostService interface {
	// Create stores a post authored by the caller.
	Create(ctx context.Context, callerID uuid.UUID, title, body string) (*domain.Post, error)

	// GetByID returns the post or store.ErrPostNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// ListByUserID returns the user's posts, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)

	// Update merges the supplied fields onto a post.
	Update(ctx context.Context, id uuid.UUID, patch domain.PostPatch) (*domain.Post, error)

	// AuthorizeOwner loads the post and returns ErrNotOwned unless callerID
	// authored it. Handlers call it before Update and Delete.
	AuthorizeOwner(ctx context.Context, callerID, postID uuid.UUID) (*domain.Post, error)

	// Delete removes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}

type postServiceImpl struct {
	postStore  store.PostStore
	transactor store.Transactor
	logger     *slog.Logger
	timeFunc   func() time.Time
}

var _ PostService = (*postServiceImpl)(nil)

// NewPostService creates a new PostService.
func NewPostService(
	postStore store.PostStore,
	transactor store.Transactor,
	logger *slog.Logger,
) (PostService, error) {
	if postStore == nil {
		return nil, domain.NewValidationError("postStore", "cannot be nil", domain.ErrValidation)
	}
	if transactor == nil {
		return nil, domain.NewValidationError("transactor", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		postStore:  postStore,
		transactor: transactor,
		logger:     logger.With(slog.String("component", "post_service")),
		timeFunc:   time.Now,
	}, nil
}

// Create implements PostService.Create.
func (s *postServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	title, body string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("user_id", callerID.String()))

	post, err := domain.NewPost(callerID, title, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("post author does not exist")
			return nil, err
		}
		log.Error("failed to create post", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Info("post created", slog.String("post_id", post.ID.String()))
	return post, nil
}

// GetByID implements PostService.GetByID.
func (s *postServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return post, nil
}

// ListByUserID implements PostService.ListByUserID.
func (s *postServiceImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.postStore.ListByUserID(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list posts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update implements PostService.Update.
func (s *postServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.PostPatch,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("post_id", id.String()))

	var updated *domain.Post
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.postStore.WithTx(tx)

		post, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		post.Apply(patch, s.timeFunc())
		if err := post.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		if err := txStore.Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to update post", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	log.Debug("post updated")
	return updated, nil
}

// AuthorizeOwner implements PostService.AuthorizeOwner.
func (s *postServiceImpl) AuthorizeOwner(
	ctx context.Context,
	callerID, postID uuid.UUID,
) (*domain.Post, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsAuthoredBy(callerID) {
		logger.FromContextOrDefault(ctx, s.logger).Debug("caller is not the post author",
			slog.String("post_id", postID.String()),
			slog.String("caller_id", callerID.String()),
			slog.String("author_id", post.UserID.String()))
		return nil, ErrNotOwned
	}
	return post, nil
}

// Delete implements PostService.Delete.
func (s *postServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.postStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return fmt.Errorf("failed to delete post: %w", err)
	}

	log.Info("post deleted", slog.String("post_id", id.String()))
	return nil
}
