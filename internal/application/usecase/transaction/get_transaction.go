// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// GetTransactionInput represents the input for a transaction lookup.
type GetTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of a transaction lookup.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithBalance
}

// GetTransactionUseCase handles ownership-checked transaction lookups.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	balanceRepo     adapter.BalanceRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository, balanceRepo adapter.BalanceRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
	}
}

// Execute looks up a single transaction. Transactions of other users are
// reported as not found.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	t, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if t.UserID != input.UserID {
		return nil, notFoundError()
	}

	b, err := uc.balanceRepo.FindByID(ctx, t.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	sum, err := uc.transactionRepo.SumByBalance(ctx, t.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance amount: %w", err)
	}

	return &GetTransactionOutput{
		Transaction: &entity.TransactionWithBalance{
			Transaction:   t,
			BalanceName:   b.Name,
			ActualBalance: sum,
		},
	}, nil
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
