package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Address validation errors
var (
	ErrEmptyAddressID     = errors.New("address ID cannot be empty")
	ErrEmptyAddressUserID = errors.New("address user ID cannot be empty")
	ErrEmptyZipCode       = errors.New("zip code cannot be empty")
)

// Address is the single postal address a user may register.
type Address struct {
	ID        uuid.UUID `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zipCode"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddressFields are the user-editable parts of an Address.
type AddressFields struct {
	Street  string
	City    string
	State   string
	Country string
	ZipCode string
}

// AddressPatch carries the fields of a partial address update.
type AddressPatch struct {
	Street  *string
	City    *string
	State   *string
	Country *string
	ZipCode *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AddressPatch) IsEmpty() bool {
	return p.Street == nil && p.City == nil && p.State == nil && p.Country == nil && p.ZipCode == nil
}

// NewAddress creates an Address owned by userID.
func NewAddress(userID uuid.UUID, f AddressFields) (*Address, error) {
	now := time.Now().UTC()
	addr := &Address{
		ID:        uuid.New(),
		Street:    f.Street,
		City:      f.City,
		State:     f.State,
		Country:   f.Country,
		ZipCode:   f.ZipCode,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Validate checks the invariants every stored address must satisfy.
func (a *Address) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAddressID
	}
	if a.UserID == uuid.Nil {
		return ErrEmptyAddressUserID
	}
	if a.Street == "" || a.City == "" || a.State == "" || a.Country == "" {
		return ErrEmptyContent
	}
	if a.ZipCode == "" {
		return ErrEmptyZipCode
	}
	return nil
}

// Apply merges the supplied fields of p onto the address. UserID never changes.
func (a *Address) Apply(p AddressPatch, now time.Time) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.ZipCode != nil {
		a.ZipCode = *p.ZipCode
	}
	a.UpdatedAt = now.UTC()
}
