// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Transactions are append-only: there are no update or delete
// methods by design.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreatePair inserts a debit and a credit transaction in a single atomic
	// commit. Used by goal fulfillment, where a partial write would corrupt
	// the ledger.
	CreatePair(ctx context.Context, debit, credit *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByBalanceIDs retrieves all transactions recorded against any of the
	// given balances.
	FindByBalanceIDs(ctx context.Context, balanceIDs []uuid.UUID) ([]*entity.Transaction, error)

	// SumByBalance returns the sum of all transaction amounts recorded against
	// the balance; exactly zero when there are none.
	SumByBalance(ctx context.Context, balanceID uuid.UUID) (decimal.Decimal, error)

	// SumByBudget returns the sum of all transaction amounts tagged with the
	// budget; exactly zero when there are none.
	SumByBudget(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error)
}
