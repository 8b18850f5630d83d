// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// ValidatePassword applies the password policy to a plaintext candidate:
	// at least 7 characters and must not contain the word "password" in any
	// letter case. Returns a domain validation error when the policy fails.
	ValidatePassword(password string) error

	// Hash generates a salted hash from a plaintext password.
	// The same plaintext yields a different hash on every call.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A mismatch returns false, never an error.
	Check(password, hash string) bool
}
