package service

import (
	"github.com/google/uuid"
)

// Claims is the decoded identity carried by an issued bearer token.
type Claims struct {
	UserID  uuid.UUID
	TokenID uuid.UUID
}

// TokenService signs and parses bearer tokens. A signature that verifies is
// necessary but not sufficient: the caller must also confirm the token is
// present in the account's current token set (see repository.TokenRepository),
// so revoked tokens are rejected even though they still parse.
type TokenService interface {
	// Sign produces a new signed token bound to the user. Each call yields a
	// distinct token (a fresh token ID is embedded).
	Sign(userID uuid.UUID) (string, error)

	// Parse verifies the signature and decodes the claims.
	Parse(tokenString string) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 digest of a raw token,
	// the form in which tokens are persisted.
	HashToken(tokenString string) string
}
