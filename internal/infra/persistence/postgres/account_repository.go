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

// accountRepository implements the domain.AccountRepository interface using GORM.
// All single-account queries carry the owner's user_id, so a foreign account
// behaves exactly like a missing one.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// ListByUserID retrieves all accounts owned by the given user.
func (repo *accountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by user id")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// FindByID retrieves a single account owned by the given user.
func (repo *accountRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountNumberTaken.WrapMessage("account number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountNumberTaken.WrapMessage("account number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes an account owned by the given user.
func (repo *accountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:        data.ID,
		UserID:    data.UserID,
		Number:    data.Number,
		Nickname:  data.Nickname,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Number:    data.Number,
		Nickname:  data.Nickname,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
	}
}
