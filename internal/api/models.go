package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/validation"
)

// fieldLabels names request fields in validation messages.
var fieldLabels = map[string]string{
	"firstName":   "First name",
	"lastName":    "Last name",
	"email":       "Email",
	"phoneNumber": "Phone number",
	"street":      "Street",
	"city":        "City",
	"state":       "State",
	"country":     "Country",
	"zipCode":     "Zip Code",
	"title":       "Title",
	"body":        "Body",
}

// NewRequestValidator returns a validator configured for every request type in this package.
func NewRequestValidator() *validation.Validator {
	v := validation.New(fieldLabels)
	v.RegisterPartial(UpdateUserRequest{}, UpdateAddressRequest{}, UpdatePostRequest{})
	return v
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims surrounding whitespace.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	FirstName   string  `json:"firstName"   validate:"required,min=2,max=50"`
	LastName    string  `json:"lastName"    validate:"required,min=2,max=50"`
	Email       string  `json:"email"       validate:"required,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,phone"`
}

// Normalize trims surrounding whitespace.
func (r *CreateUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	trimPtr(r.PhoneNumber)
}

// UpdateUserRequest defines the payload for a partial user update.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"   validate:"omitempty,notblank,min=2,max=50"`
	LastName    *string `json:"lastName"    validate:"omitempty,notblank,min=2,max=50"`
	Email       *string `json:"email"       validate:"omitempty,notblank,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,phone"`
}

// UnmarshalJSON treats an explicit "phoneNumber": null as a request to clear
// the number, the same as an empty string.
func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateUserRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["phoneNumber"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		cleared := ""
		p.PhoneNumber = &cleared
	}

	*r = UpdateUserRequest(p)
	return nil
}

// Normalize trims surrounding whitespace.
func (r *UpdateUserRequest) Normalize() {
	trimPtr(r.FirstName, r.LastName, r.Email, r.PhoneNumber)
}

// IsEmpty reports whether no field was supplied.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Patch().IsEmpty()
}

// Patch converts the request to a domain patch.
func (r UpdateUserRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

// CreateAddressRequest defines the payload for creating the caller's address.
// The owner always comes from the token, never from the body.
type CreateAddressRequest struct {
	Street  string             `json:"street"  validate:"required,min=2,max=100"`
	City    string             `json:"city"    validate:"required,min=2,max=50"`
	State   string             `json:"state"   validate:"required,min=2,max=50"`
	Country string             `json:"country" validate:"required,min=2,max=50"`
	ZipCode validation.ZipCode `json:"zipCode" validate:"required,zipcode"`
}

// Normalize trims surrounding whitespace.
func (r *CreateAddressRequest) Normalize() {
	r.Street = strings.TrimSpace(r.Street)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Country = strings.TrimSpace(r.Country)
	r.ZipCode = validation.ZipCode(strings.TrimSpace(string(r.ZipCode)))
}

// Fields converts the request to domain address fields.
func (r CreateAddressRequest) Fields() domain.AddressFields {
	return domain.AddressFields{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
		ZipCode: r.ZipCode.String(),
	}
}

// UpdateAddressRequest defines the payload for a partial address update.
type UpdateAddressRequest struct {
	Street  *string             `json:"street"  validate:"omitempty,notblank,min=2,max=100"`
	City    *string             `json:"city"    validate:"omitempty,notblank,min=2,max=50"`
	State   *string             `json:"state"   validate:"omitempty,notblank,min=2,max=50"`
	Country *string             `json:"country" validate:"omitempty,notblank,min=2,max=50"`
	ZipCode *validation.ZipCode `json:"zipCode" validate:"omitempty,zipcode"`
}

// Normalize trims surrounding whitespace.
func (r *UpdateAddressRequest) Normalize() {
	trimPtr(r.Street, r.City, r.State, r.Country)
	if r.ZipCode != nil {
		*r.ZipCode = validation.ZipCode(strings.TrimSpace(string(*r.ZipCode)))
	}
}

// IsEmpty reports whether no field was supplied.
func (r UpdateAddressRequest) IsEmpty() bool {
	return r.Patch().IsEmpty()
}

// Patch converts the request to a domain patch.
func (r UpdateAddressRequest) Patch() domain.AddressPatch {
	p := domain.AddressPatch{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
	}
	if r.ZipCode != nil {
		zip := r.ZipCode.String()
		p.ZipCode = &zip
	}
	return p
}

// CreatePostRequest defines the payload for creating a post as the caller.
type CreatePostRequest struct {
	Title string `json:"title" validate:"required,min=3,max=100"`
	Body  string `json:"body"  validate:"required,min=10"`
}

// Normalize trims surrounding whitespace.
func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
}

// UpdatePostRequest defines the payload for a partial post update. The
// author cannot be changed.
type UpdatePostRequest struct {
	Title *string `json:"title" validate:"omitempty,notblank,min=3,max=100"`
	Body  *string `json:"body"  validate:"omitempty,notblank,min=10"`
}

// Normalize trims surrounding whitespace.
func (r *UpdatePostRequest) Normalize() {
	trimPtr(r.Title, r.Body)
}

// IsEmpty reports whether no field was supplied.
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Body == nil
}

// Patch converts the request to a domain patch.
func (r UpdatePostRequest) Patch() domain.PostPatch {
	return domain.PostPatch{Title: r.Title, Body: r.Body}
}

// CountResponse is returned by the user count endpoint.
type CountResponse struct {
	Count int64 `json:"count"`
}

func trimPtr(ss ...*string) {
	for _, s := range ss {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}
