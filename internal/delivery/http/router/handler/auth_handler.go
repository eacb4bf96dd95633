// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tokenResponse is the body returned by both login and registration.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// registerRequest is the JSON body accepted by the registration endpoint.
// Names are optional; email and password are not.
type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Token handles the password login request. The body is an OAuth2-style form
// with username (the email) and password fields.
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return response.UnprocessableEntity(c, "username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    username,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// Register handles the registration request and returns a token for the new
// account, so a fresh client is logged in straight away.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid registration payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid registration payload")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
