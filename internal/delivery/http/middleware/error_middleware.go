package middleware

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping handlers to `{"detail": ...}` bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status code and outward message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Detail(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors (404 route miss, 405, body-too-large, ...).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Detail(c, httpErr.Code, message)

		return
	}

	// Anything else is unexpected: log it and return a generic 500.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Detail(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}
