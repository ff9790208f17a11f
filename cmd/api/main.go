// Package main is the entry point for the Cash Organizer API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cash-organizer/backend/config"
	"github.com/cash-organizer/backend/internal/application/usecase/auth"
	"github.com/cash-organizer/backend/internal/application/usecase/balance"
	"github.com/cash-organizer/backend/internal/application/usecase/budget"
	"github.com/cash-organizer/backend/internal/application/usecase/currency"
	"github.com/cash-organizer/backend/internal/application/usecase/goal"
	"github.com/cash-organizer/backend/internal/application/usecase/transaction"
	"github.com/cash-organizer/backend/internal/infra/db"
	"github.com/cash-organizer/backend/internal/infra/server/router"
	"github.com/cash-organizer/backend/internal/integration/adapters"
	"github.com/cash-organizer/backend/internal/integration/email"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/controller"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/middleware"
	"github.com/cash-organizer/backend/internal/integration/persistence"
	"github.com/cash-organizer/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Cash Organizer API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.BalanceModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	balanceRepo := persistence.NewBalanceRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(
		userRepo,
		resetTokenService,
		emailSender,
		cfg.Email.AppBaseURL+"/reset-password",
	)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Balance use cases
	listBalancesUseCase := balance.NewListBalancesUseCase(balanceRepo, transactionRepo)
	getBalanceUseCase := balance.NewGetBalanceUseCase(balanceRepo, transactionRepo)
	createBalanceUseCase := balance.NewCreateBalanceUseCase(balanceRepo)
	renameBalanceUseCase := balance.NewRenameBalanceUseCase(balanceRepo)
	deleteBalanceUseCase := balance.NewDeleteBalanceUseCase(balanceRepo)

	// Budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	renameBudgetUseCase := budget.NewRenameBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, transactionRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, transactionRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	renameGoalUseCase := goal.NewRenameGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, transactionRepo)
	fulfillGoalUseCase := goal.NewFulfillGoalUseCase(goalRepo, balanceRepo, transactionRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, balanceRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo, balanceRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, balanceRepo)
	expendBudgetUseCase := transaction.NewExpendBudgetUseCase(transactionRepo, balanceRepo, budgetRepo)

	// Currency use case
	listCurrenciesUseCase := currency.NewListCurrenciesUseCase()

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	currencyController := controller.NewCurrencyController(listCurrenciesUseCase)
	balanceController := controller.NewBalanceController(
		listBalancesUseCase,
		getBalanceUseCase,
		createBalanceUseCase,
		renameBalanceUseCase,
		deleteBalanceUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		renameBudgetUseCase,
		deleteBudgetUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		createGoalUseCase,
		renameGoalUseCase,
		deleteGoalUseCase,
		fulfillGoalUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		expendBudgetUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		authController,
		currencyController,
		balanceController,
		budgetController,
		goalController,
		transactionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
