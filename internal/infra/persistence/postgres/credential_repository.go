package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new credential record. The user_id column is unique, so a
// second credential for the same user surfaces as a duplicate registration.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("credential already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByUserID retrieves the credential record belonging to a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return toCredentialDomain(&credentialM), nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
	}
}
