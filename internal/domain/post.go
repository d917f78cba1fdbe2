package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Post validation errors
var (
	ErrEmptyPostID     = errors.New("post ID cannot be empty")
	ErrEmptyPostUserID = errors.New("post author ID cannot be empty")
	ErrEmptyPostTitle  = errors.New("post title cannot be empty")
	ErrEmptyPostBody   = errors.New("post body cannot be empty")
)

// Post is a piece of text authored by a user. The author is fixed at creation.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostPatch carries the fields of a partial post update. There is no way to
// reassign the author.
type PostPatch struct {
	Title *string
	Body  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil
}

// NewPost creates a Post authored by userID.
func NewPost(userID uuid.UUID, title, body string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

// Validate checks the invariants every stored post must satisfy.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}
	if p.UserID == uuid.Nil {
		return ErrEmptyPostUserID
	}
	if p.Title == "" {
		return ErrEmptyPostTitle
	}
	if p.Body == "" {
		return ErrEmptyPostBody
	}
	return nil
}

// IsAuthoredBy reports whether userID wrote the post.
func (p *Post) IsAuthoredBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// Apply merges the supplied fields of patch onto the post.
func (p *Post) Apply(patch PostPatch, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Body != nil {
		p.Body = *patch.Body
	}
	p.UpdatedAt = now.UTC()
}
