// Package auth issues and verifies the HS256 access tokens that carry a
// caller's identity, and implements the email-only login flow.
package auth
