package balance

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

	if err := db.AutoMigrate(&model.BalanceModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedBalance(t *testing.T, repo adapter.BalanceRepository, userID uuid.UUID, name, currency string) *entity.Balance {
	t.Helper()
	b := entity.NewBalance(userID, name, currency, 0)
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("failed to seed balance: %v", err)
	}
	return b
}

func seedTransaction(t *testing.T, db *gorm.DB, userID, balanceID uuid.UUID, amount string) {
	t.Helper()
	tx := entity.NewTransaction(userID, balanceID, nil, decimal.RequireFromString(amount), "seed")
	if err := db.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func TestListBalancesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("derives actual balance from transactions", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		transactionRepo := persistence.NewTransactionRepository(db)
		uc := NewListBalancesUseCase(balanceRepo, transactionRepo)

		b := seedBalance(t, balanceRepo, userID, "Checking", "USD")
		seedTransaction(t, db, userID, b.ID, "100")
		seedTransaction(t, db, userID, b.ID, "-30.50")
		seedTransaction(t, db, userID, b.ID, "5")

		output, err := uc.Execute(ctx, ListBalancesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 1 {
			t.Fatalf("expected one balance, got %d", len(output.Balances))
		}
		if !output.Balances[0].ActualBalance.Equal(decimal.RequireFromString("74.50")) {
			t.Errorf("actual balance = %s, want 74.50", output.Balances[0].ActualBalance)
		}
	})

	t.Run("a balance with no transactions sums to zero", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewListBalancesUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		seedBalance(t, balanceRepo, userID, "Empty", "USD")

		output, err := uc.Execute(ctx, ListBalancesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balances[0].ActualBalance.IsZero() {
			t.Errorf("actual balance = %s, want 0", output.Balances[0].ActualBalance)
		}
	})

	t.Run("hides system balances", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewListBalancesUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		seedBalance(t, balanceRepo, userID, "Checking", "USD")
		system := entity.NewSystemBalance(userID, "Vacation", "USD")
		if err := balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		output, err := uc.Execute(ctx, ListBalancesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 1 {
			t.Fatalf("expected one visible balance, got %d", len(output.Balances))
		}
		if output.Balances[0].Balance.Name != "Checking" {
			t.Errorf("unexpected balance in listing: %q", output.Balances[0].Balance.Name)
		}
	})

	t.Run("filters by currency", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewListBalancesUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		seedBalance(t, balanceRepo, userID, "Checking", "USD")
		seedBalance(t, balanceRepo, userID, "Euro account", "EUR")

		output, err := uc.Execute(ctx, ListBalancesInput{UserID: userID, Currency: "EUR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 1 {
			t.Fatalf("expected one balance, got %d", len(output.Balances))
		}
		if output.Balances[0].Balance.Currency != "EUR" {
			t.Errorf("currency = %q, want EUR", output.Balances[0].Balance.Currency)
		}
	})

	t.Run("does not include balances of other users", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewListBalancesUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		seedBalance(t, balanceRepo, uuid.New(), "Someone else's", "USD")

		output, err := uc.Execute(ctx, ListBalancesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 0 {
			t.Errorf("expected no balances, got %d", len(output.Balances))
		}
	})
}

func TestGetBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns an owned balance with its sum", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewGetBalanceUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		b := seedBalance(t, balanceRepo, userID, "Checking", "USD")
		seedTransaction(t, db, userID, b.ID, "42")

		output, err := uc.Execute(ctx, GetBalanceInput{UserID: userID, BalanceID: b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.ActualBalance.Equal(decimal.NewFromInt(42)) {
			t.Errorf("actual balance = %s, want 42", output.ActualBalance)
		}
	})

	t.Run("reports balances of other users as not found", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewGetBalanceUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		b := seedBalance(t, balanceRepo, uuid.New(), "Foreign", "USD")

		_, err := uc.Execute(ctx, GetBalanceInput{UserID: userID, BalanceID: b.ID})
		if !errors.Is(err, domainerror.ErrBalanceNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("reports system balances as not found", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewGetBalanceUseCase(balanceRepo, persistence.NewTransactionRepository(db))

		system := entity.NewSystemBalance(userID, "Vacation", "USD")
		if err := balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		_, err := uc.Execute(ctx, GetBalanceInput{UserID: userID, BalanceID: system.ID})
		if !errors.Is(err, domainerror.ErrBalanceNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestCreateBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a visible balance", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewCreateBalanceUseCase(balanceRepo)

		output, err := uc.Execute(ctx, CreateBalanceInput{
			UserID:                 userID,
			Name:                   "Savings",
			Currency:               "USD",
			AnnualIncomePercentage: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Balance.System {
			t.Error("user-created balances must not be system balances")
		}

		stored, err := balanceRepo.FindByID(ctx, output.Balance.ID)
		if err != nil {
			t.Fatalf("balance was not persisted: %v", err)
		}
		if stored.AnnualIncomePercentage != 20 {
			t.Errorf("income percentage = %d, want 20", stored.AnnualIncomePercentage)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		db := setupTestDB(t)
		uc := NewCreateBalanceUseCase(persistence.NewBalanceRepository(db))

		_, err := uc.Execute(ctx, CreateBalanceInput{UserID: userID, Name: " ", Currency: "USD"})
		if !errors.Is(err, domainerror.ErrInvalidBalanceName) {
			t.Errorf("expected invalid balance name error, got %v", err)
		}
	})

	t.Run("rejects negative income percentage", func(t *testing.T) {
		db := setupTestDB(t)
		uc := NewCreateBalanceUseCase(persistence.NewBalanceRepository(db))

		_, err := uc.Execute(ctx, CreateBalanceInput{
			UserID:                 userID,
			Name:                   "Savings",
			Currency:               "USD",
			AnnualIncomePercentage: -5,
		})
		if !errors.Is(err, domainerror.ErrInvalidIncomePercentage) {
			t.Errorf("expected invalid income percentage error, got %v", err)
		}
	})
}

func TestRenameBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renames an owned balance", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewRenameBalanceUseCase(balanceRepo)

		b := seedBalance(t, balanceRepo, userID, "Checking", "USD")

		output, err := uc.Execute(ctx, RenameBalanceInput{UserID: userID, BalanceID: b.ID, Name: "Main account"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Balance.Name != "Main account" {
			t.Errorf("name = %q, want Main account", output.Balance.Name)
		}
	})

	t.Run("reports system balances as not found", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewRenameBalanceUseCase(balanceRepo)

		system := entity.NewSystemBalance(userID, "Vacation", "USD")
		if err := balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		_, err := uc.Execute(ctx, RenameBalanceInput{UserID: userID, BalanceID: system.ID, Name: "Sneaky"})
		if !errors.Is(err, domainerror.ErrBalanceNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestDeleteBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes the balance and its transactions", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		transactionRepo := persistence.NewTransactionRepository(db)
		uc := NewDeleteBalanceUseCase(balanceRepo)

		b := seedBalance(t, balanceRepo, userID, "Checking", "USD")
		seedTransaction(t, db, userID, b.ID, "100")
		seedTransaction(t, db, userID, b.ID, "-40")

		output, err := uc.Execute(ctx, DeleteBalanceInput{UserID: userID, BalanceID: b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected the balance to be deleted")
		}

		if _, err := balanceRepo.FindByID(ctx, b.ID); !errors.Is(err, domainerror.ErrBalanceNotFound) {
			t.Errorf("expected balance to be gone, got %v", err)
		}

		leftovers, err := transactionRepo.FindByBalanceIDs(ctx, []uuid.UUID{b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(leftovers) != 0 {
			t.Errorf("expected no leftover transactions, got %d", len(leftovers))
		}
	})

	t.Run("silently skips system balances", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewDeleteBalanceUseCase(balanceRepo)

		system := entity.NewSystemBalance(userID, "Vacation", "USD")
		if err := balanceRepo.Create(ctx, system); err != nil {
			t.Fatalf("failed to seed system balance: %v", err)
		}

		output, err := uc.Execute(ctx, DeleteBalanceInput{UserID: userID, BalanceID: system.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Deleted {
			t.Error("system balances must not be deleted")
		}

		if _, err := balanceRepo.FindByID(ctx, system.ID); err != nil {
			t.Errorf("system balance should still exist, got %v", err)
		}
	})

	t.Run("reports balances of other users as not found", func(t *testing.T) {
		db := setupTestDB(t)
		balanceRepo := persistence.NewBalanceRepository(db)
		uc := NewDeleteBalanceUseCase(balanceRepo)

		b := seedBalance(t, balanceRepo, uuid.New(), "Foreign", "USD")

		_, err := uc.Execute(ctx, DeleteBalanceInput{UserID: userID, BalanceID: b.ID})
		if !errors.Is(err, domainerror.ErrBalanceNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
