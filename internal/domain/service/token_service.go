package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
//
// Validation covers signature, expiry and subject presence only; it never
// checks that the subject still exists. Callers that need a live identity
// must re-resolve the user against the user store.
type TokenService interface {
	// GenerateToken creates a signed, time-bound access token for a user.
	GenerateToken(userID string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
