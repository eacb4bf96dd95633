package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateExpenseCategoryInput defines the data required to create a category.
type CreateExpenseCategoryInput struct {
	Name        string
	Description string
}

// UpdateExpenseCategoryInput carries a partial update; nil fields are left untouched.
type UpdateExpenseCategoryInput struct {
	Name        *string
	Description *string
}

// ExpenseCategoryUsecase defines the interface for expense-category business operations.
// Categories are shared across users; access only requires a valid session.
type ExpenseCategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.ExpenseCategory, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.ExpenseCategory, error)
	CreateCategory(ctx context.Context, input *CreateExpenseCategoryInput) (*entity.ExpenseCategory, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *UpdateExpenseCategoryInput) (*entity.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}
