package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The account number carries a
// system-wide uniqueness constraint.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Number    string    `gorm:"column:account_number;type:varchar(20);unique;not null"`
	Nickname  string    `gorm:"column:account_nickname;type:varchar(200)"`
	Balance   float64   `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
