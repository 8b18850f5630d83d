// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// Duplicate emails surface as a domain conflict error, enforced by the
	// store's unique constraint rather than a check-then-write.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row. The avatar lives inline on the row and the
	// token rows cascade, so no orphaned state survives the delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetAvatar stores the profile image bytes for the user.
	SetAvatar(ctx context.Context, id uuid.UUID, avatar []byte) error

	// RemoveAvatar clears the profile image for the user.
	RemoveAvatar(ctx context.Context, id uuid.UUID) error
}
