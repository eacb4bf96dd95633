// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal of the system, keyed by email.
// Name fields are optional and never change through the auth flows.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's login identifier. Unique and case-sensitive.
	FirstName string    // Optional given name supplied at registration.
	LastName  string    // Optional family name supplied at registration.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Credential stores the password hash for a User. One-to-one with User;
// the plaintext password never survives past hashing.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}
