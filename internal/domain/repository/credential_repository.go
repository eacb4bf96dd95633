package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no credential record exists for a user.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for password-credential persistence.
type CredentialRepository interface {
	// Create persists a new credential record for a user.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUserID retrieves the credential record belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}
