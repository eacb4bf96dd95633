package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategoryModel mirrors the 'expense_categories' table.
type ExpenseCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}
