// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cash-organizer/backend/internal/integration/entrypoint/controller"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	currencyController    *controller.CurrencyController
	balanceController     *controller.BalanceController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	transactionController *controller.TransactionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	currencyController *controller.CurrencyController,
	balanceController *controller.BalanceController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	transactionController *controller.TransactionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		currencyController:    currencyController,
		balanceController:     balanceController,
		budgetController:      budgetController,
		goalController:        goalController,
		transactionController: transactionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.currencyController != nil && r.authMiddleware != nil {
			currencies := v1.Group("/currencies")
			currencies.Use(r.authMiddleware.Authenticate())
			{
				currencies.GET("", r.currencyController.List)
			}
		}

		if r.balanceController != nil && r.authMiddleware != nil {
			balances := v1.Group("/balances")
			balances.Use(r.authMiddleware.Authenticate())
			{
				balances.GET("", r.balanceController.List)
				balances.POST("", r.balanceController.Create)
				balances.GET("/:id", r.balanceController.Get)
				balances.PATCH("/:id", r.balanceController.Rename)
				balances.DELETE("/:id", r.balanceController.Delete)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.PATCH("/:id", r.budgetController.Rename)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Rename)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/fulfill", r.goalController.Fulfill)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.POST("/expend-budget", r.transactionController.ExpendBudget)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
