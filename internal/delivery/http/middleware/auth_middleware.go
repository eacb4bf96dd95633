// Package middleware contains HTTP-layer middleware for the Echo server.
package middleware

import (
	"strings"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// KeySubject is the email the validated token was issued to.
	KeySubject = "subject"

	// KeyAccessToken is the raw bearer token string; handlers that need the
	// caller's full identity re-resolve it against the user store.
	KeyAccessToken = "accessToken"
)

// AuthMiddleware gates protected routes on a valid session token.
// The gate checks signature and expiry only; no store lookup happens here.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. Missing header,
// malformed scheme, bad signature and expired token all produce the same 401
// body so the response leaks nothing about which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.Message())
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.Message())
		}

		c.Set(KeySubject, claims.Subject)
		c.Set(KeyAccessToken, tokenString)

		return next(c)
	}
}
