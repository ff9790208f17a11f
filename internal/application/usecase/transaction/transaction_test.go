package transaction

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

type transactionFixture struct {
	db              *gorm.DB
	transactionRepo adapter.TransactionRepository
	balanceRepo     adapter.BalanceRepository
	budgetRepo      adapter.BudgetRepository
	userID          uuid.UUID
	balance         *entity.Balance
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()
	ctx := context.Background()

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

	if err := db.AutoMigrate(
		&model.BalanceModel{},
		&model.BudgetModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	f := &transactionFixture{
		db:              db,
		transactionRepo: persistence.NewTransactionRepository(db),
		balanceRepo:     persistence.NewBalanceRepository(db),
		budgetRepo:      persistence.NewBudgetRepository(db),
		userID:          uuid.New(),
	}

	f.balance = entity.NewBalance(f.userID, "Checking", "USD", 0)
	if err := f.balanceRepo.Create(ctx, f.balance); err != nil {
		t.Fatalf("failed to seed balance: %v", err)
	}

	return f
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records a signed entry and returns the fresh sum", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewCreateTransactionUseCase(f.transactionRepo, f.balanceRepo)

		if _, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			Amount:      decimal.NewFromInt(100),
			Description: "Salary",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			Amount:      decimal.RequireFromString("-25.50"),
			Description: "Coffee",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.ActualBalance.Equal(decimal.RequireFromString("74.50")) {
			t.Errorf("actual balance = %s, want 74.50", output.Transaction.ActualBalance)
		}
		if output.Transaction.BalanceName != "Checking" {
			t.Errorf("balance name = %q, want Checking", output.Transaction.BalanceName)
		}
		if output.Transaction.Transaction.BudgetID != nil {
			t.Error("plain transactions must not carry a budget tag")
		}
	})

	t.Run("denies balances of other users", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewCreateTransactionUseCase(f.transactionRepo, f.balanceRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      uuid.New(),
			BalanceID:   f.balance.ID,
			Amount:      decimal.NewFromInt(10),
			Description: "Sneaky",
		})
		if !errors.Is(err, domainerror.ErrBalanceDoesNotBelongToUser) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})

	t.Run("denies system balances", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewCreateTransactionUseCase(f.transactionRepo, f.balanceRepo)

		system := entity.NewSystemBalance(f.userID, "Vacation", "USD")
		if err := f.balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      f.userID,
			BalanceID:   system.ID,
			Amount:      decimal.NewFromInt(10),
			Description: "Direct goal deposit",
		})
		if !errors.Is(err, domainerror.ErrBalanceDoesNotBelongToUser) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})
}

func TestExpendBudgetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records the expense as a negative amount", func(t *testing.T) {
		f := newTransactionFixture(t)
		budget := entity.NewBudget(f.userID, "Groceries", "USD", decimal.NewFromInt(500))
		if err := f.budgetRepo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		uc := NewExpendBudgetUseCase(f.transactionRepo, f.balanceRepo, f.budgetRepo)

		output, err := uc.Execute(ctx, ExpendBudgetInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			BudgetID:    budget.ID,
			Amount:      decimal.NewFromInt(60),
			Description: "Weekly shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Transaction.Amount.Equal(decimal.NewFromInt(-60)) {
			t.Errorf("amount = %s, want -60", output.Transaction.Transaction.Amount)
		}
		if output.Transaction.Transaction.BudgetID == nil || *output.Transaction.Transaction.BudgetID != budget.ID {
			t.Error("expense should be tagged with the budget")
		}

		sum, err := f.transactionRepo.SumByBudget(ctx, budget.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(-60)) {
			t.Errorf("budget sum = %s, want -60", sum)
		}
	})

	t.Run("a negative input amount is recorded the same way", func(t *testing.T) {
		f := newTransactionFixture(t)
		budget := entity.NewBudget(f.userID, "Groceries", "USD", decimal.NewFromInt(500))
		if err := f.budgetRepo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		uc := NewExpendBudgetUseCase(f.transactionRepo, f.balanceRepo, f.budgetRepo)

		output, err := uc.Execute(ctx, ExpendBudgetInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			BudgetID:    budget.ID,
			Amount:      decimal.NewFromInt(-60),
			Description: "Weekly shop",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Transaction.Amount.Equal(decimal.NewFromInt(-60)) {
			t.Errorf("amount = %s, want -60", output.Transaction.Transaction.Amount)
		}
	})

	t.Run("rejects blank descriptions", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewExpendBudgetUseCase(f.transactionRepo, f.balanceRepo, f.budgetRepo)

		_, err := uc.Execute(ctx, ExpendBudgetInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			BudgetID:    uuid.New(),
			Amount:      decimal.NewFromInt(10),
			Description: "   ",
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionDescription) {
			t.Errorf("expected invalid description error, got %v", err)
		}
	})

	t.Run("denies budgets of other users", func(t *testing.T) {
		f := newTransactionFixture(t)
		budget := entity.NewBudget(uuid.New(), "Foreign", "USD", decimal.NewFromInt(100))
		if err := f.budgetRepo.Create(ctx, budget); err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		uc := NewExpendBudgetUseCase(f.transactionRepo, f.balanceRepo, f.budgetRepo)

		_, err := uc.Execute(ctx, ExpendBudgetInput{
			UserID:      f.userID,
			BalanceID:   f.balance.ID,
			BudgetID:    budget.ID,
			Amount:      decimal.NewFromInt(10),
			Description: "Sneaky",
		})
		if !errors.Is(err, domainerror.ErrBudgetDoesNotBelongToUser) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the user's transactions most recent first", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewListTransactionsUseCase(f.transactionRepo, f.balanceRepo)

		for _, amount := range []string{"100", "-20", "35"} {
			tx := entity.NewTransaction(f.userID, f.balance.ID, nil, decimal.RequireFromString(amount), "entry")
			if err := f.transactionRepo.Create(ctx, tx); err != nil {
				t.Fatalf("failed to seed transaction: %v", err)
			}
		}

		output, err := uc.Execute(ctx, ListTransactionsInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 3 {
			t.Fatalf("expected three transactions, got %d", len(output.Transactions))
		}
		for _, tx := range output.Transactions {
			if tx.BalanceName != "Checking" {
				t.Errorf("balance name = %q, want Checking", tx.BalanceName)
			}
			if !tx.ActualBalance.Equal(decimal.NewFromInt(115)) {
				t.Errorf("actual balance = %s, want 115", tx.ActualBalance)
			}
		}
	})

	t.Run("filters by balance", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewListTransactionsUseCase(f.transactionRepo, f.balanceRepo)

		other := entity.NewBalance(f.userID, "Savings", "USD", 0)
		if err := f.balanceRepo.Create(ctx, other); err != nil {
			t.Fatalf("failed to seed balance: %v", err)
		}

		if err := f.transactionRepo.Create(ctx, entity.NewTransaction(f.userID, f.balance.ID, nil, decimal.NewFromInt(10), "checking entry")); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
		if err := f.transactionRepo.Create(ctx, entity.NewTransaction(f.userID, other.ID, nil, decimal.NewFromInt(20), "savings entry")); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}

		output, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:     f.userID,
			BalanceIDs: []uuid.UUID{other.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected one transaction, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Transaction.Description != "savings entry" {
			t.Errorf("unexpected transaction: %q", output.Transactions[0].Transaction.Description)
		}
	})

	t.Run("denies filtering by a balance of another user", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewListTransactionsUseCase(f.transactionRepo, f.balanceRepo)

		foreign := entity.NewBalance(uuid.New(), "Foreign", "USD", 0)
		if err := f.balanceRepo.Create(ctx, foreign); err != nil {
			t.Fatalf("failed to seed balance: %v", err)
		}

		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:     f.userID,
			BalanceIDs: []uuid.UUID{foreign.ID},
		})
		if !errors.Is(err, domainerror.ErrBalanceDoesNotBelongToUser) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})

	t.Run("denies filtering by a system balance", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewListTransactionsUseCase(f.transactionRepo, f.balanceRepo)

		system := entity.NewSystemBalance(f.userID, "Vacation", "USD")
		if err := f.balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:     f.userID,
			BalanceIDs: []uuid.UUID{system.ID},
		})
		if !errors.Is(err, domainerror.ErrBalanceDoesNotBelongToUser) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})
}

func TestGetTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns an owned transaction with balance details", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewGetTransactionUseCase(f.transactionRepo, f.balanceRepo)

		tx := entity.NewTransaction(f.userID, f.balance.ID, nil, decimal.NewFromInt(42), "Lunch")
		if err := f.transactionRepo.Create(ctx, tx); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}

		output, err := uc.Execute(ctx, GetTransactionInput{UserID: f.userID, TransactionID: tx.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Transaction.Description != "Lunch" {
			t.Errorf("description = %q, want Lunch", output.Transaction.Transaction.Description)
		}
		if !output.Transaction.ActualBalance.Equal(decimal.NewFromInt(42)) {
			t.Errorf("actual balance = %s, want 42", output.Transaction.ActualBalance)
		}
	})

	t.Run("reports transactions of other users as not found", func(t *testing.T) {
		f := newTransactionFixture(t)
		uc := NewGetTransactionUseCase(f.transactionRepo, f.balanceRepo)

		tx := entity.NewTransaction(f.userID, f.balance.ID, nil, decimal.NewFromInt(42), "Lunch")
		if err := f.transactionRepo.Create(ctx, tx); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}

		_, err := uc.Execute(ctx, GetTransactionInput{UserID: uuid.New(), TransactionID: tx.ID})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
