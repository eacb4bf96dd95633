package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory is a label for grouping expenses. Categories are shared
// across all users rather than scoped to a single owner.
type ExpenseCategory struct {
	ID          uuid.UUID // The unique identifier for the category.
	Name        string    // The category name, e.g. "Groceries".
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when this category was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this category.
}

// ExpenseCategoryPatch carries an optional-field update for an
// ExpenseCategory. Nil fields are left untouched.
type ExpenseCategoryPatch struct {
	Name        *string
	Description *string
}

// Apply copies the set fields of the patch onto the category.
func (p *ExpenseCategoryPatch) Apply(category *ExpenseCategory) {
	if p.Name != nil {
		category.Name = *p.Name
	}
	if p.Description != nil {
		category.Description = *p.Description
	}
}
