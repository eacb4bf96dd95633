// Package response shapes outgoing HTTP bodies. Error bodies follow the
// `{"detail": "<message>"}` convention clients of this API already depend on.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderWWWAuthenticate is attached to every 401 so clients know to present
// a bearer token.
const HeaderWWWAuthenticate = "WWW-Authenticate"

// BearerChallenge is the WWW-Authenticate value for bearer-token auth.
const BearerChallenge = "Bearer"

// DetailBody is the error body shape used by every non-2xx response.
type DetailBody struct {
	Detail string `json:"detail"`
}

// JSON writes a plain resource body with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Detail writes a `{"detail": ...}` error body with the given status code.
// A 401 always carries the bearer challenge header.
func Detail(c echo.Context, statusCode int, message string) error {
	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(HeaderWWWAuthenticate, BearerChallenge)
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, DetailBody{Detail: message})
}

// Unauthorized writes a 401 with the bearer challenge header.
func Unauthorized(c echo.Context, message string) error {
	return Detail(c, http.StatusUnauthorized, message)
}

// NotFound writes a 404 error body.
func NotFound(c echo.Context, message string) error {
	return Detail(c, http.StatusNotFound, message)
}

// UnprocessableEntity writes a 422 error body for schema validation failures.
func UnprocessableEntity(c echo.Context, message string) error {
	return Detail(c, http.StatusUnprocessableEntity, message)
}
