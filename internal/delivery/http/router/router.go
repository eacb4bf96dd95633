// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	AccountHandler         *handler.AccountHandler
	ExpenseCategoryHandler *handler.ExpenseCategoryHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler            *handler.AuthHandler
	accountHandler         *handler.AccountHandler
	expenseCategoryHandler *handler.ExpenseCategoryHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:            params.AuthHandler,
		accountHandler:         params.AccountHandler,
		expenseCategoryHandler: params.ExpenseCategoryHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes are public by definition.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.POST("/token/register", r.authHandler.Register)
	}

	// Account routes require a valid session token.
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/", r.accountHandler.List)
		accountGroup.POST("/", r.accountHandler.Create)
		accountGroup.GET("/:id", r.accountHandler.Get)
		accountGroup.PATCH("/:id", r.accountHandler.Update)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
	}

	// Expense-category routes require a valid session token.
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.GET("/categories/", r.expenseCategoryHandler.List)
		expenseGroup.POST("/categories/", r.expenseCategoryHandler.Create)
		expenseGroup.GET("/categories/:id", r.expenseCategoryHandler.Get)
		expenseGroup.PUT("/categories/:id", r.expenseCategoryHandler.Update)
		expenseGroup.DELETE("/categories/:id", r.expenseCategoryHandler.Delete)
	}
}
