// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single account.
// PasswordHash holds the bcrypt verifier derived from the signup password;
// it must never appear in API responses or logs.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier. Stored lowercased so uniqueness is case-insensitive.
	Name         string    // The user's display name, trimmed of surrounding whitespace.
	PasswordHash string    // The bcrypt-derived credential verifier.
	Age          *int      // Optional non-negative age. Nil when never provided.
	Avatar       []byte    // Optional profile image bytes. Nil when no avatar is set.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// HasAvatar reports whether the account carries a profile image.
func (u *User) HasAvatar() bool {
	return len(u.Avatar) > 0
}
