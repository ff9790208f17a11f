package goal

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cash-organizer/backend/internal/domain/entity"
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

	if err := db.AutoMigrate(
		&model.BalanceModel{},
		&model.GoalModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, fn func(context.Context) error) {
	t.Helper()
	if err := fn(context.Background()); err != nil {
		t.Fatalf("failed to seed test data: %v", err)
	}
}

func seedTransaction(t *testing.T, db *gorm.DB, userID, balanceID uuid.UUID, amount string) {
	t.Helper()
	tx := entity.NewTransaction(userID, balanceID, nil, decimal.RequireFromString(amount), "seed")
	if err := db.Create(model.TransactionFromEntity(tx)).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}
