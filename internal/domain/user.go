package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID    = errors.New("user ID cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
)

// User is a registered person. A user owns at most one Address and any
// number of Posts; deleting the user removes both.
type User struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	// Address is populated by reads that load the relation.
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch carries the fields of a partial user update. Nil fields are left
// untouched by Apply.
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PhoneNumber == nil
}

// NewUser creates a User with a fresh ID and timestamps.
// An empty phone number is stored as absent.
func NewUser(firstName, lastName, email string, phoneNumber *string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: normalizePhone(phoneNumber),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants every stored user must satisfy.
// Field formats are enforced earlier by request validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(u.LastName) == "" {
		return ErrEmptyLastName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// ChangesEmail reports whether applying p would give the user a different email.
func (u *User) ChangesEmail(p UserPatch) bool {
	return p.Email != nil && *p.Email != u.Email
}

// Apply merges the supplied fields of p onto the user and bumps UpdatedAt.
func (u *User) Apply(p UserPatch, now time.Time) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = normalizePhone(p.PhoneNumber)
	}
	u.UpdatedAt = now.UTC()
}

func normalizePhone(phone *string) *string {
	if phone == nil || *phone == "" {
		return nil
	}
	p := *phone
	return &p
}
