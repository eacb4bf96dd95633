// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"

	"ledger/config"
	"ledger/internal/domain/service"
)

// ErrTokenMissingSubject is returned when a structurally valid token carries
// no subject claim.
var ErrTokenMissingSubject = errors.New("token missing subject claim")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed; the validator rejects every other algorithm.
type jwtService struct {
	secret    string        // Secret key for signing session tokens.
	accessTTL time.Duration // Lifetime requested by the login/registration path.
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a configuration error and fails construction.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: cfg.AccessTokenTTL(),
		now:       time.Now,
	}, nil
}

// Issue creates a signed session token with sub, iat and exp claims.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,             // Subject (who the token is for)
		"iat": now.Unix(),          // Issued At
		"exp": now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// IssueDefault creates a signed session token with the default lifetime.
func (s *jwtService) IssueDefault(subject string) (string, error) {
	return s.Issue(subject, service.DefaultSessionTTL)
}

// Validate checks the signature, structure and expiry of a token string and
// extracts its claims. No store lookup happens here.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrTokenMissingSubject
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, pkgerrors.Wrap(jwt.ErrTokenRequiredClaimMissing, "exp claim missing")
	}

	return &service.Claims{
		Subject:   subject,
		ExpiresAt: expiresAt.Time.UTC(),
	}, nil
}

// AccessTokenTTL returns the lifetime the login and registration endpoints request.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
