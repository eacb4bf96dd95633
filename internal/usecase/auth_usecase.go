// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the issued session token after a successful
// registration or login. TokenType is always "bearer".
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user with a password credential and returns a
	// session token for the fresh account.
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)

	// Login verifies an email/password pair and returns a session token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// ResolveIdentity validates a raw token string and loads the user it was
	// issued to. A valid token whose subject no longer exists is treated the
	// same as an invalid token.
	ResolveIdentity(ctx context.Context, tokenString string) (*entity.User, error)
}
