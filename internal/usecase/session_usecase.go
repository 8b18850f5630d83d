// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase validates presented bearer tokens and revokes them.
type SessionUsecase interface {
	// Authenticate verifies the token signature and confirms the token is
	// still a member of the account's live token set, which is read at call
	// time so revocation applies on the very next request. Returns the bound
	// user ID.
	Authenticate(ctx context.Context, rawToken string) (uuid.UUID, error)

	// Logout revokes exactly the presented token. Idempotent: revoking an
	// already-absent token succeeds.
	Logout(ctx context.Context, userID uuid.UUID, rawToken string) error

	// LogoutAll revokes every token issued to the account.
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}
