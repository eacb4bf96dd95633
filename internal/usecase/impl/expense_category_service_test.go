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

// categoryServiceFixtures holds all test dependencies for expense-category service tests.
type categoryServiceFixtures struct {
	service      usecase.ExpenseCategoryUsecase
	categoryRepo *fakeCategoryRepo
}

func createTestCategoryService(_ *testing.T) categoryServiceFixtures {
	categoryRepo := newFakeCategoryRepo()
	txManager := &fakeTxManager{factory: &fakeRepoFactory{categoryRepo: categoryRepo}}

	service := NewExpenseCategoryService(ExpenseCategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
	}
}

func TestExpenseCategoryService_CreateAndGet(t *testing.T) {
	fixtures := createTestCategoryService(t)

	created, err := fixtures.service.CreateCategory(context.Background(), &usecase.CreateExpenseCategoryInput{
		Name:        "Groceries",
		Description: "Food and household supplies",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := fixtures.service.GetCategory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", fetched.Name)
	assert.Equal(t, "Food and household supplies", fetched.Description)
}

func TestExpenseCategoryService_List(t *testing.T) {
	fixtures := createTestCategoryService(t)

	for _, name := range []string{"Groceries", "Transport", "Rent"} {
		_, err := fixtures.service.CreateCategory(context.Background(), &usecase.CreateExpenseCategoryInput{Name: name})
		require.NoError(t, err)
	}

	categories, err := fixtures.service.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}

func TestExpenseCategoryService_Get_NotFound(t *testing.T) {
	fixtures := createTestCategoryService(t)

	_, err := fixtures.service.GetCategory(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestExpenseCategoryService_Update_PartialPatch(t *testing.T) {
	fixtures := createTestCategoryService(t)

	created, err := fixtures.service.CreateCategory(context.Background(), &usecase.CreateExpenseCategoryInput{
		Name:        "Groceries",
		Description: "Food",
	})
	require.NoError(t, err)

	newDescription := "Food and household supplies"
	updated, err := fixtures.service.UpdateCategory(context.Background(), created.ID, &usecase.UpdateExpenseCategoryInput{
		Description: &newDescription,
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)
	assert.Equal(t, "Food and household supplies", updated.Description)
}

func TestExpenseCategoryService_Update_NotFound(t *testing.T) {
	fixtures := createTestCategoryService(t)

	name := "whatever"
	_, err := fixtures.service.UpdateCategory(context.Background(), uuid.New(), &usecase.UpdateExpenseCategoryInput{
		Name: &name,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestExpenseCategoryService_Delete(t *testing.T) {
	fixtures := createTestCategoryService(t)

	created, err := fixtures.service.CreateCategory(context.Background(), &usecase.CreateExpenseCategoryInput{Name: "Groceries"})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.DeleteCategory(context.Background(), created.ID))

	err = fixtures.service.DeleteCategory(context.Background(), created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
