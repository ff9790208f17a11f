package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
	"github.com/cash-organizer/backend/internal/integration/persistence"
	"github.com/cash-organizer/backend/internal/integration/persistence/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.BudgetModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedBudget(t *testing.T, repo adapter.BudgetRepository, userID uuid.UUID, name, initialAmount string) *entity.Budget {
	t.Helper()
	b := entity.NewBudget(userID, name, "USD", decimal.RequireFromString(initialAmount))
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	return b
}

func seedExpense(t *testing.T, db *gorm.DB, userID, budgetID uuid.UUID, amount string) {
	t.Helper()
	tx := entity.NewTransaction(userID, uuid.New(), &budgetID, decimal.RequireFromString(amount), "seed")
	if err := db.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func TestListBudgetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("derives current and relative amounts from tagged transactions", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewListBudgetsUseCase(budgetRepo, persistence.NewTransactionRepository(db))

		b := seedBudget(t, budgetRepo, userID, "Groceries", "500")
		seedExpense(t, db, userID, b.ID, "-120")
		seedExpense(t, db, userID, b.ID, "-80")

		output, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("expected one budget, got %d", len(output.Budgets))
		}
		if !output.Budgets[0].CurrentAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("current amount = %s, want 300", output.Budgets[0].CurrentAmount)
		}
		if !output.Budgets[0].RelativeAmount.Equal(decimal.NewFromInt(60)) {
			t.Errorf("relative amount = %s, want 60", output.Budgets[0].RelativeAmount)
		}
	})

	t.Run("an untouched budget sits at its initial amount", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewListBudgetsUseCase(budgetRepo, persistence.NewTransactionRepository(db))

		seedBudget(t, budgetRepo, userID, "Groceries", "500")

		output, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budgets[0].CurrentAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("current amount = %s, want 500", output.Budgets[0].CurrentAmount)
		}
		if !output.Budgets[0].RelativeAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("relative amount = %s, want 100", output.Budgets[0].RelativeAmount)
		}
	})
}

func TestGetBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns an owned budget", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewGetBudgetUseCase(budgetRepo, persistence.NewTransactionRepository(db))

		b := seedBudget(t, budgetRepo, userID, "Groceries", "500")
		seedExpense(t, db, userID, b.ID, "-500")
		seedExpense(t, db, userID, b.ID, "-100")

		output, err := uc.Execute(ctx, GetBudgetInput{UserID: userID, BudgetID: b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.CurrentAmount.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("an overspent budget should go negative, got %s", output.Budget.CurrentAmount)
		}
	})

	t.Run("reports budgets of other users as not found", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewGetBudgetUseCase(budgetRepo, persistence.NewTransactionRepository(db))

		b := seedBudget(t, budgetRepo, uuid.New(), "Foreign", "100")

		_, err := uc.Execute(ctx, GetBudgetInput{UserID: userID, BudgetID: b.ID})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a budget", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewCreateBudgetUseCase(budgetRepo)

		output, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:        userID,
			Name:          "Groceries",
			Currency:      "USD",
			InitialAmount: decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := budgetRepo.FindByID(ctx, output.Budget.ID)
		if err != nil {
			t.Fatalf("budget was not persisted: %v", err)
		}
		if !stored.InitialAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("initial amount = %s, want 500", stored.InitialAmount)
		}
	})

	t.Run("rejects negative initial amount", func(t *testing.T) {
		db := setupTestDB(t)
		uc := NewCreateBudgetUseCase(persistence.NewBudgetRepository(db))

		_, err := uc.Execute(ctx, CreateBudgetInput{
			UserID:        userID,
			Name:          "Groceries",
			Currency:      "USD",
			InitialAmount: decimal.NewFromInt(-10),
		})
		if !errors.Is(err, domainerror.ErrInvalidInitialAmount) {
			t.Errorf("expected invalid initial amount error, got %v", err)
		}
	})
}

func TestRenameBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renames an owned budget", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewRenameBudgetUseCase(budgetRepo)

		b := seedBudget(t, budgetRepo, userID, "Groceries", "500")

		output, err := uc.Execute(ctx, RenameBudgetInput{UserID: userID, BudgetID: b.ID, Name: "Food"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.Name != "Food" {
			t.Errorf("name = %q, want Food", output.Budget.Name)
		}
	})

	t.Run("denies budgets of other users", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewRenameBudgetUseCase(budgetRepo)

		b := seedBudget(t, budgetRepo, uuid.New(), "Foreign", "100")

		_, err := uc.Execute(ctx, RenameBudgetInput{UserID: userID, BudgetID: b.ID, Name: "Mine now"})
		if !errors.Is(err, domainerror.ErrUnauthorizedBudgetAccess) {
			t.Errorf("expected unauthorized access error, got %v", err)
		}
	})
}

func TestDeleteBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes the budget but keeps tagged transactions", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		transactionRepo := persistence.NewTransactionRepository(db)
		uc := NewDeleteBudgetUseCase(budgetRepo)

		b := seedBudget(t, budgetRepo, userID, "Groceries", "500")
		seedExpense(t, db, userID, b.ID, "-50")

		output, err := uc.Execute(ctx, DeleteBudgetInput{UserID: userID, BudgetID: b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected the budget to be deleted")
		}

		sum, err := transactionRepo.SumByBudget(ctx, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("tagged transactions should survive, sum = %s", sum)
		}
	})

	t.Run("denies budgets of other users", func(t *testing.T) {
		db := setupTestDB(t)
		budgetRepo := persistence.NewBudgetRepository(db)
		uc := NewDeleteBudgetUseCase(budgetRepo)

		b := seedBudget(t, budgetRepo, uuid.New(), "Foreign", "100")

		_, err := uc.Execute(ctx, DeleteBudgetInput{UserID: userID, BudgetID: b.ID})
		if !errors.Is(err, domainerror.ErrUnauthorizedBudgetAccess) {
			t.Errorf("expected unauthorized access error, got %v", err)
		}
	})
}
