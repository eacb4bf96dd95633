package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts retrieves all accounts owned by the given user.
func (srv *accountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetAccount retrieves a single account owned by the given user. An account
// belonging to someone else is indistinguishable from a missing one.
func (srv *accountService) GetAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// CreateAccount opens a new account for the given user.
func (srv *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, input *usecase.CreateAccountInput) (*entity.Account, error) {
	newAccount := &entity.Account{
		UserID:   userID,
		Number:   input.Number,
		Nickname: input.Nickname,
		Balance:  input.Balance,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.Any("userID", userID), slog.Any("accountID", newAccount.ID))

	return newAccount, nil
}

// UpdateAccount applies a partial update to an account owned by the given
// user. The read and write happen in one transaction so concurrent patches
// cannot interleave.
func (srv *accountService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	patch := entity.AccountPatch{
		Number:   input.Number,
		Nickname: input.Nickname,
		Balance:  input.Balance,
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, findErr := accountRepo.FindByID(ctx, userID, accountID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(findErr, "failed to find account for update")
		}

		patch.Apply(account)

		if updateErr := accountRepo.Update(ctx, account); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update account")
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute account update transaction", slog.Any("userID", userID), slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAccount removes an account owned by the given user.
func (srv *accountService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	if err := srv.accountRepo.Delete(ctx, userID, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		srv.log(ctx).Error("Failed to delete account", slog.Any("userID", userID), slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Debug("Account deleted", slog.Any("userID", userID), slog.Any("accountID", accountID))

	return nil
}
