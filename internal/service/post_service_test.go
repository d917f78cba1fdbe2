package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/mocks"
	"github.com/userhub/userhub-api/internal/service"
	"github.com/userhub/userhub-api/internal/store"
)

func newPostService(t *testing.T, postStore *mocks.PostStore) service.PostService {
	t.Helper()
	svc, err := service.NewPostService(postStore, &mocks.Transactor{}, testLogger())
	require.NoError(t, err)
	return svc
}

func testPost(author uuid.UUID) *domain.Post {
	created := time.Now().Add(-time.Hour).UTC()
	return &domain.Post{
		ID:        uuid.New(),
		Title:     "Hello there",
		Body:      "A body long enough to pass",
		UserID:    author,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPostService_Create(t *testing.T) {
	caller := uuid.New()

	t.Run("author is the caller", func(t *testing.T) {
		postStore := new(mocks.PostStore)
		postStore.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
			return p.UserID == caller && p.Title == "Hello there"
		})).Return(nil)

		post, err := newPostService(t, postStore).
			Create(context.Background(), caller, "Hello there", "A body long enough to pass")
		require.NoError(t, err)
		assert.Equal(t, caller, post.UserID)
		assert.NotEqual(t, uuid.Nil, post.ID)
		postStore.AssertExpectations(t)
	})

	t.Run("author does not exist", func(t *testing.T) {
		postStore := new(mocks.PostStore)
		postStore.On("Create", mock.Anything, mock.Anything).Return(store.ErrUserNotFound)

		_, err := newPostService(t, postStore).
			Create(context.Background(), caller, "Hello there", "A body long enough to pass")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := newPostService(t, new(mocks.PostStore)).
			Create(context.Background(), caller, "", "A body long enough to pass")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPostService_AuthorizeOwner(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	post := testPost(author)
	missing := uuid.New()

	postStore := new(mocks.PostStore)
	postStore.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	postStore.On("GetByID", mock.Anything, missing).Return(nil, store.ErrPostNotFound)

	svc := newPostService(t, postStore)
	ctx := context.Background()

	got, err := svc.AuthorizeOwner(ctx, author, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = svc.AuthorizeOwner(ctx, stranger, post.ID)
	assert.ErrorIs(t, err, service.ErrNotOwned)

	_, err = svc.AuthorizeOwner(ctx, author, missing)
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	postStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostService_Update(t *testing.T) {
	author := uuid.New()

	t.Run("merges supplied fields", func(t *testing.T) {
		post := testPost(author)
		postStore := new(mocks.PostStore)
		postStore.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		postStore.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := newPostService(t, postStore).
			Update(context.Background(), post.ID, domain.PostPatch{Body: strPtr("A brand new body text")})
		require.NoError(t, err)
		assert.Equal(t, "Hello there", updated.Title)
		assert.Equal(t, "A brand new body text", updated.Body)
		assert.Equal(t, author, updated.UserID)
	})

	t.Run("missing post", func(t *testing.T) {
		id := uuid.New()
		postStore := new(mocks.PostStore)
		postStore.On("GetByID", mock.Anything, id).Return(nil, store.ErrPostNotFound)

		_, err := newPostService(t, postStore).
			Update(context.Background(), id, domain.PostPatch{Title: strPtr("New title")})
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostService_ListAndDelete(t *testing.T) {
	author := uuid.New()
	posts := []domain.Post{*testPost(author), *testPost(author)}
	dbErr := errors.New("connection reset")
	broken := uuid.New()
	postID := uuid.New()
	missing := uuid.New()

	postStore := new(mocks.PostStore)
	postStore.On("ListByUserID", mock.Anything, author).Return(posts, nil)
	postStore.On("ListByUserID", mock.Anything, broken).Return(nil, dbErr)
	postStore.On("Delete", mock.Anything, postID).Return(nil)
	postStore.On("Delete", mock.Anything, missing).Return(store.ErrPostNotFound)

	svc := newPostService(t, postStore)
	ctx := context.Background()

	got, err := svc.ListByUserID(ctx, author)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.ListByUserID(ctx, broken)
	assert.ErrorIs(t, err, dbErr)

	require.NoError(t, svc.Delete(ctx, postID))
	assert.ErrorIs(t, svc.Delete(ctx, missing), store.ErrPostNotFound)
}
