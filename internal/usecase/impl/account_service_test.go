package impl

import (
	"context"
	"testing"

	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *fakeAccountRepo
}

func createTestAccountService(_ *testing.T) accountServiceFixtures {
	accountRepo := newFakeAccountRepo()
	txManager := &fakeTxManager{factory: &fakeRepoFactory{accountRepo: accountRepo}}

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
	}
}

func TestAccountService_CreateAndList(t *testing.T) {
	fixtures := createTestAccountService(t)
	userID := uuid.New()

	created, err := fixtures.service.CreateAccount(context.Background(), userID, &usecase.CreateAccountInput{
		Number:   "ACC-001",
		Nickname: "Checking",
		Balance:  100.50,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.InDelta(t, 100.50, created.Balance, 0.001)

	accounts, err := fixtures.service.ListAccounts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ACC-001", accounts[0].Number)
}

func TestAccountService_List_ScopedToOwner(t *testing.T) {
	fixtures := createTestAccountService(t)
	alice := uuid.New()
	bob := uuid.New()

	_, err := fixtures.service.CreateAccount(context.Background(), alice, &usecase.CreateAccountInput{
		Number: "ACC-ALICE", Nickname: "Savings",
	})
	require.NoError(t, err)

	accounts, err := fixtures.service.ListAccounts(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountService_Get_ForeignAccountLooksMissing(t *testing.T) {
	fixtures := createTestAccountService(t)
	alice := uuid.New()
	bob := uuid.New()

	created, err := fixtures.service.CreateAccount(context.Background(), alice, &usecase.CreateAccountInput{
		Number: "ACC-001", Nickname: "Checking",
	})
	require.NoError(t, err)

	_, err = fixtures.service.GetAccount(context.Background(), bob, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Update_PartialPatch(t *testing.T) {
	fixtures := createTestAccountService(t)
	userID := uuid.New()

	created, err := fixtures.service.CreateAccount(context.Background(), userID, &usecase.CreateAccountInput{
		Number:   "ACC-001",
		Nickname: "Checking",
		Balance:  100,
	})
	require.NoError(t, err)

	newNickname := "Daily driver"
	updated, err := fixtures.service.UpdateAccount(context.Background(), userID, created.ID, &usecase.UpdateAccountInput{
		Nickname: &newNickname,
	})
	require.NoError(t, err)

	// Untouched fields survive the patch.
	assert.Equal(t, "ACC-001", updated.Number)
	assert.Equal(t, "Daily driver", updated.Nickname)
	assert.InDelta(t, 100, updated.Balance, 0.001)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fixtures := createTestAccountService(t)

	nickname := "whatever"
	_, err := fixtures.service.UpdateAccount(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateAccountInput{
		Nickname: &nickname,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Delete(t *testing.T) {
	fixtures := createTestAccountService(t)
	userID := uuid.New()

	created, err := fixtures.service.CreateAccount(context.Background(), userID, &usecase.CreateAccountInput{
		Number: "ACC-001", Nickname: "Checking",
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.DeleteAccount(context.Background(), userID, created.ID))

	_, err = fixtures.service.GetAccount(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Delete_ForeignAccount(t *testing.T) {
	fixtures := createTestAccountService(t)
	alice := uuid.New()
	bob := uuid.New()

	created, err := fixtures.service.CreateAccount(context.Background(), alice, &usecase.CreateAccountInput{
		Number: "ACC-001", Nickname: "Checking",
	})
	require.NoError(t, err)

	err = fixtures.service.DeleteAccount(context.Background(), bob, created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	// The account must survive the foreign delete attempt.
	_, err = fixtures.service.GetAccount(context.Background(), alice, created.ID)
	assert.NoError(t, err)
}
