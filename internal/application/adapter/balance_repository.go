// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// BalanceRepository defines the interface for balance persistence operations.
type BalanceRepository interface {
	// Create creates a new balance in the database.
	Create(ctx context.Context, balance *entity.Balance) error

	// FindByID retrieves a balance by its ID, system balances included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Balance, error)

	// FindVisibleByUser retrieves all non-system balances for a given user,
	// optionally filtered by currency code (empty string means no filter).
	FindVisibleByUser(ctx context.Context, userID uuid.UUID, currency string) ([]*entity.Balance, error)

	// Update updates an existing balance in the database.
	Update(ctx context.Context, balance *entity.Balance) error

	// DeleteWithTransactions removes a balance and every transaction recorded
	// against it in a single atomic commit.
	DeleteWithTransactions(ctx context.Context, id uuid.UUID) error
}
