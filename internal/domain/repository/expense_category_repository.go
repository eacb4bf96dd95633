package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when an expense category does not exist.
var ErrCategoryNotFound = errors.New("expense category not found")

// ExpenseCategoryRepository defines the standard operations for expense-category persistence.
type ExpenseCategoryRepository interface {
	// List retrieves all expense categories.
	List(ctx context.Context) ([]*entity.ExpenseCategory, error)

	// FindByID retrieves a single expense category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)

	// Create persists a new expense category.
	Create(ctx context.Context, category *entity.ExpenseCategory) error

	// Update modifies an existing expense category.
	Update(ctx context.Context, category *entity.ExpenseCategory) error

	// Delete removes an expense category.
	Delete(ctx context.Context, id uuid.UUID) error
}
