// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the account and the freshly issued bearer token after
// signup or login.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for account creation and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup creates the account, issues a first token, and dispatches the
	// welcome email without awaiting it.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies credentials and issues a new token. Existing tokens for
	// the account stay valid.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
