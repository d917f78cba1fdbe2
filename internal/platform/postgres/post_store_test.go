package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/store"
)

var postColumnNames = []string{"id", "user_id", "title", "body", "created_at", "updated_at"}

func TestPostgresPostStore_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)
		p, err := domain.NewPost(uuid.New(), "A title", "A body of text")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(p.ID, p.UserID, "A title", "A body of text", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Create(context.Background(), p))
	})

	t.Run("unknown author", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)
		p, err := domain.NewPost(uuid.New(), "A title", "A body of text")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO posts").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: postsUserIDFkey})

		assert.ErrorIs(t, s.Create(context.Background(), p), store.ErrUserNotFound)
	})
}

func TestPostgresPostStore_GetByID(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresPostStore(db, nil)
	id, author := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(postColumnNames).
			AddRow(id.String(), author.String(), "Title", "Body text", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	p, err := s.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, author, p.UserID)
	assert.True(t, p.IsAuthoredBy(author))

	_, err = s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostgresPostStore_ListByUserID(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)
		author := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
			WithArgs(author).
			WillReturnRows(sqlmock.NewRows(postColumnNames).
				AddRow(uuid.NewString(), author.String(), "Newer", "Body text", now, now).
				AddRow(uuid.NewString(), author.String(), "Older", "Body text", now.Add(-time.Hour), now))

		posts, err := s.ListByUserID(context.Background(), author)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Newer", posts[0].Title)
	})

	t.Run("no posts yields empty slice", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)

		mock.ExpectQuery("FROM posts").WillReturnRows(sqlmock.NewRows(postColumnNames))

		posts, err := s.ListByUserID(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("malformed row", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresPostStore(db, nil)
		now := time.Now().UTC()

		mock.ExpectQuery("FROM posts").WillReturnRows(sqlmock.NewRows(postColumnNames).
			AddRow("not-a-uuid", uuid.NewString(), "Title", "Body text", now, now))

		_, err := s.ListByUserID(context.Background(), uuid.New())
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "post", storeErr.Entity)
	})
}

func TestPostgresPostStore_UpdateAndDelete(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresPostStore(db, nil)
	p, err := domain.NewPost(uuid.New(), "A title", "A body of text")
	require.NoError(t, err)

	mock.ExpectExec("UPDATE posts").
		WithArgs("A title", "A body of text", sqlmock.AnyArg(), p.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs(p.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.ErrorIs(t, s.Update(context.Background(), p), store.ErrPostNotFound)
	assert.NoError(t, s.Delete(context.Background(), p.ID))
}
