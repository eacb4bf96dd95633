package service

import (
	"time"
)

// DefaultSessionTTL is the token lifetime IssueDefault uses when a caller
// has no opinion. The login and registration endpoints request the longer
// configured TTL instead; both values are externally observable.
const DefaultSessionTTL = 15 * time.Minute

// Claims is the decoded payload of a session token.
type Claims struct {
	Subject   string    // The email of the principal the token was issued to.
	ExpiresAt time.Time // The absolute UTC instant after which the token is invalid.
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are self-contained and never persisted; validity is purely cryptographic.
type TokenService interface {
	// Issue creates a signed token for the given subject expiring ttl from
	// now. The ttl is honored literally; a zero ttl produces a token that is
	// already expired.
	Issue(subject string, ttl time.Duration) (string, error)

	// IssueDefault creates a signed token for the given subject expiring
	// DefaultSessionTTL from now.
	IssueDefault(subject string) (string, error)

	// Validate checks signature, structure and expiry of a token string.
	// It performs no store lookup.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime the login and registration
	// endpoints request for newly issued tokens.
	AccessTokenTTL() time.Duration
}
