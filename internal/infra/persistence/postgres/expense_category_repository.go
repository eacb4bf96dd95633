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

// expenseCategoryRepository implements the domain.ExpenseCategoryRepository interface using GORM.
type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository is the constructor for expenseCategoryRepository.
func NewExpenseCategoryRepository(db *gorm.DB) repository.ExpenseCategoryRepository {
	return &expenseCategoryRepository{db: db}
}

// List retrieves all expense categories.
func (repo *expenseCategoryRepository) List(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	var categoryMs []model.ExpenseCategoryModel
	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expense categories")
	}

	categories := make([]*entity.ExpenseCategory, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toExpenseCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// FindByID retrieves a single expense category by its unique ID.
func (repo *expenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var categoryM model.ExpenseCategoryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense category by id")
	}

	return toExpenseCategoryDomain(&categoryM), nil
}

// Create persists a new expense category.
func (repo *expenseCategoryRepository) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryM := fromExpenseCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update modifies an existing expense category.
func (repo *expenseCategoryRepository) Update(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryM := fromExpenseCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Save(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update expense category")
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Delete removes an expense category.
func (repo *expenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExpenseCategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expense category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func toExpenseCategoryDomain(data *model.ExpenseCategoryModel) *entity.ExpenseCategory {
	if data == nil {
		return nil
	}

	return &entity.ExpenseCategory{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromExpenseCategoryDomain(data *entity.ExpenseCategory) *model.ExpenseCategoryModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseCategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
