package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountResponse mirrors the wire names clients already rely on.
type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Number    string    `json:"account_number"`
	Nickname  string    `json:"account_nickname"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type createAccountRequest struct {
	Number   string  `json:"account_number" validate:"required,max=20"`
	Nickname string  `json:"account_nickname" validate:"max=200"`
	Balance  float64 `json:"balance"`
}

type updateAccountRequest struct {
	Number   *string  `json:"account_number" validate:"omitempty,max=20"`
	Nickname *string  `json:"account_nickname" validate:"omitempty,max=200"`
	Balance  *float64 `json:"balance"`
}

// AccountHandler holds dependencies for account handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	authUC    usecase.AuthUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUC usecase.AccountUsecase, authUC usecase.AuthUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		authUC:    authUC,
		logger:    logger,
	}
}

// List returns every account owned by the caller.
func (h *AccountHandler) List(c echo.Context) error {
	caller, err := resolveCaller(c, h.authUC)
	if err != nil {
		return errors.WithStack(err)
	}

	accounts, err := h.accountUC.ListAccounts(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountResponse(account))
	}

	return response.JSON(c, http.StatusOK, result)
}

// Create opens a new account for the caller.
func (h *AccountHandler) Create(c echo.Context) error {
	caller, err := resolveCaller(c, h.authUC)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid account payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid account payload")
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), caller.ID, &usecase.CreateAccountInput{
		Number:   req.Number,
		Nickname: req.Nickname,
		Balance:  req.Balance,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAccountResponse(account))
}

// Get returns a single account owned by the caller.
func (h *AccountHandler) Get(c echo.Context) error {
	caller, err := resolveCaller(c, h.authUC)
	if err != nil {
		return errors.WithStack(err)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid account id")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), caller.ID, accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAccountResponse(account))
}

// Update applies a partial update to one of the caller's accounts.
func (h *AccountHandler) Update(c echo.Context) error {
	caller, err := resolveCaller(c, h.authUC)
	if err != nil {
		return errors.WithStack(err)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid account id")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid account payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid account payload")
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), caller.ID, accountID, &usecase.UpdateAccountInput{
		Number:   req.Number,
		Nickname: req.Nickname,
		Balance:  req.Balance,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAccountResponse(account))
}

// Delete removes one of the caller's accounts.
func (h *AccountHandler) Delete(c echo.Context) error {
	caller, err := resolveCaller(c, h.authUC)
	if err != nil {
		return errors.WithStack(err)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid account id")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), caller.ID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]bool{"ok": true})
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:        account.ID,
		UserID:    account.UserID,
		Number:    account.Number,
		Nickname:  account.Nickname,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}
