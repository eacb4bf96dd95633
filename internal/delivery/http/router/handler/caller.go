package handler

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// resolveCaller turns the raw bearer token stored by the auth middleware into
// the caller's full identity. The gate only checked signature and expiry; this
// second step confirms the subject still exists.
func resolveCaller(c echo.Context, authUC usecase.AuthUsecase) (*entity.User, error) {
	tokenString, _ := c.Get(middleware.KeyAccessToken).(string)
	if tokenString == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "no token on request context")
	}

	return authUC.ResolveIdentity(c.Request().Context(), tokenString)
}
