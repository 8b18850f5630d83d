// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput is the typed patch applied to an account. The HTTP
// boundary has already rejected any request key outside the allowed set, so
// a nil field here simply means "leave unchanged".
type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
	Age      *int    `json:"age" validate:"omitempty,gte=0"`
}

// Empty reports whether the patch touches nothing.
func (in *UpdateProfileInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil && in.Age == nil
}

// ProfileUsecase defines account self-management operations. All of them act
// on an already-authenticated user ID except GetAvatar, which serves the
// public avatar route.
type ProfileUsecase interface {
	// GetProfile returns the account for the given user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the typed patch. A password change re-validates
	// the policy and re-derives the stored verifier.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the account, its tokens, and its avatar
	// atomically, dispatching the cancellation email without awaiting it.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// SetAvatar validates and stores the profile image (PNG or JPEG, at most
	// 1 MiB).
	SetAvatar(ctx context.Context, userID uuid.UUID, avatar []byte) error

	// RemoveAvatar clears the profile image.
	RemoveAvatar(ctx context.Context, userID uuid.UUID) error

	// GetAvatar returns the stored image bytes for any account.
	GetAvatar(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
