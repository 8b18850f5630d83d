package repository

import (
	"context"

	"github.com/google/uuid"
)

// TokenRepository manages the set of issued, still-valid bearer tokens per user.
// Membership in this set is what makes a signed token acceptable: a token that
// parses but has been removed here is revoked.
type TokenRepository interface {
	// Append records a newly issued token hash for the user.
	Append(ctx context.Context, userID uuid.UUID, tokenHash string) error

	// Exists reports whether the token hash is currently in the user's set.
	// Implementations must read the live set; results are never cached across
	// requests so revocation takes effect on the very next call.
	Exists(ctx context.Context, userID uuid.UUID, tokenHash string) (bool, error)

	// Remove deletes exactly this token hash from the user's set.
	// Removing an absent hash is not an error.
	Remove(ctx context.Context, userID uuid.UUID, tokenHash string) error

	// RemoveAll empties the user's token set.
	RemoveAll(ctx context.Context, userID uuid.UUID) error
}
