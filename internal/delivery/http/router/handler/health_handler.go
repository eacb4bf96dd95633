package handler

import (
	"net/http"

	"ledger/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
