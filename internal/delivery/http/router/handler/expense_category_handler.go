package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type expenseCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type createExpenseCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateExpenseCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ExpenseCategoryHandler holds dependencies for expense-category handlers.
type ExpenseCategoryHandler struct {
	categoryUC usecase.ExpenseCategoryUsecase
	logger     *slog.Logger
}

// NewExpenseCategoryHandler is the constructor for ExpenseCategoryHandler, injected by Fx.
func NewExpenseCategoryHandler(categoryUC usecase.ExpenseCategoryUsecase, logger *slog.Logger) *ExpenseCategoryHandler {
	return &ExpenseCategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// List returns every expense category.
func (h *ExpenseCategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]expenseCategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, toExpenseCategoryResponse(category))
	}

	return response.JSON(c, http.StatusOK, result)
}

// Create adds a new expense category.
func (h *ExpenseCategoryHandler) Create(c echo.Context) error {
	var req createExpenseCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid category payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid category payload")
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CreateExpenseCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toExpenseCategoryResponse(category))
}

// Get returns a single expense category.
func (h *ExpenseCategoryHandler) Get(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid category id")
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toExpenseCategoryResponse(category))
}

// Update applies a partial update; fields absent from the body are untouched.
func (h *ExpenseCategoryHandler) Update(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid category id")
	}

	var req updateExpenseCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid category payload")
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), categoryID, &usecase.UpdateExpenseCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toExpenseCategoryResponse(category))
}

// Delete removes an expense category.
func (h *ExpenseCategoryHandler) Delete(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "invalid category id")
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]bool{"ok": true})
}

func toExpenseCategoryResponse(category *entity.ExpenseCategory) expenseCategoryResponse {
	return expenseCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
