package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a single bank account tracked by a user.
// Accounts are always owned by exactly one user and never shared.
type Account struct {
	ID        uuid.UUID // The unique identifier for the account.
	UserID    uuid.UUID // Links this account to the User who owns it.
	Number    string    // The external account number. Unique across the system.
	Nickname  string    // Optional display name for the account.
	Balance   float64   // The tracked balance of the account.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// AccountPatch carries an optional-field update for an Account.
// Nil fields are left untouched.
type AccountPatch struct {
	Number   *string
	Nickname *string
	Balance  *float64
}

// Apply copies the set fields of the patch onto the account.
func (p *AccountPatch) Apply(account *Account) {
	if p.Number != nil {
		account.Number = *p.Number
	}
	if p.Nickname != nil {
		account.Nickname = *p.Nickname
	}
	if p.Balance != nil {
		account.Balance = *p.Balance
	}
}
