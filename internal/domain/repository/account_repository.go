package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an account does not exist or does not
// belong to the requesting user.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// Every read is scoped to the owning user; ownership checks live in the query.
type AccountRepository interface {
	// ListByUserID retrieves all accounts owned by the given user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// FindByID retrieves a single account owned by the given user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Account, error)

	// Create persists a new account entity.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account owned by the given user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
