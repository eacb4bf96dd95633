package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput defines the data required to open a new account.
type CreateAccountInput struct {
	Number   string
	Nickname string
	Balance  float64
}

// UpdateAccountInput carries a partial update; nil fields are left untouched.
type UpdateAccountInput struct {
	Number   *string
	Nickname *string
	Balance  *float64
}

// AccountUsecase defines the interface for account business operations.
// Every operation is scoped to the owning user; callers pass the identity
// resolved from the session token.
type AccountUsecase interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
	GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error)
	CreateAccount(ctx context.Context, userID uuid.UUID, input *CreateAccountInput) (*entity.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error
}
