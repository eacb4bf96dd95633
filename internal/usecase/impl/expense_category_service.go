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

// expenseCategoryService implements the ExpenseCategoryUsecase interface.
type expenseCategoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.ExpenseCategoryRepository
	logger       *slog.Logger
}

// ExpenseCategoryServiceParams holds dependencies for expenseCategoryService, injected by Fx.
type ExpenseCategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.ExpenseCategoryRepository
	Logger       *slog.Logger
}

// NewExpenseCategoryService is the constructor for expenseCategoryService.
func NewExpenseCategoryService(params ExpenseCategoryServiceParams) usecase.ExpenseCategoryUsecase {
	return &expenseCategoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *expenseCategoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all expense categories.
func (srv *expenseCategoryService) ListCategories(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list expense categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list expense categories")
	}

	return categories, nil
}

// GetCategory retrieves a single expense category.
func (srv *expenseCategoryService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.ExpenseCategory, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find expense category")
	}

	return category, nil
}

// CreateCategory creates a new expense category.
func (srv *expenseCategoryService) CreateCategory(ctx context.Context, input *usecase.CreateExpenseCategoryInput) (*entity.ExpenseCategory, error) {
	newCategory := &entity.ExpenseCategory{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, newCategory); err != nil {
		srv.log(ctx).Warn("Failed to create expense category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create expense category")
	}

	srv.log(ctx).Debug("Expense category created", slog.Any("categoryID", newCategory.ID))

	return newCategory, nil
}

// UpdateCategory applies a partial update to an expense category. The read
// and write happen in one transaction so concurrent patches cannot interleave.
func (srv *expenseCategoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.UpdateExpenseCategoryInput) (*entity.ExpenseCategory, error) {
	patch := entity.ExpenseCategoryPatch{
		Name:        input.Name,
		Description: input.Description,
	}

	var updated *entity.ExpenseCategory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.ExpenseCategoryRepo()

		category, findErr := categoryRepo.FindByID(ctx, categoryID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
			}

			return errors.Wrap(findErr, "failed to find expense category for update")
		}

		patch.Apply(category)

		if updateErr := categoryRepo.Update(ctx, category); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update expense category")
		}

		updated = category

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute category update transaction", slog.Any("categoryID", categoryID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteCategory removes an expense category.
func (srv *expenseCategoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		srv.log(ctx).Error("Failed to delete expense category", slog.Any("categoryID", categoryID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete expense category")
	}

	srv.log(ctx).Debug("Expense category deleted", slog.Any("categoryID", categoryID))

	return nil
}
