package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for issuing and verifying access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user's ID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the token signature and lifetime and returns its
	// claims. It returns ErrExpiredToken for expired tokens and ErrInvalidToken
	// for any other verification failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	// UserID is the caller identity the token was issued for.
	UserID uuid.UUID

	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
