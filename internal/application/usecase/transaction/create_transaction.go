// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for recording a transaction.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	BalanceID   uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// CreateTransactionOutput represents the output of recording a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithBalance
}

// CreateTransactionUseCase records a signed income or expense entry against
// a visible balance.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	balanceRepo     adapter.BalanceRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, balanceRepo adapter.BalanceRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
	}
}

// Execute records the transaction. The target balance must be a visible
// balance owned by the requesting user.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	b, err := uc.balanceRepo.FindByID(ctx, input.BalanceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, balanceAccessDeniedError()
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}
	if b.UserID != input.UserID || b.System {
		return nil, balanceAccessDeniedError()
	}

	t := entity.NewTransaction(input.UserID, b.ID, nil, input.Amount, input.Description)

	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	sum, err := uc.transactionRepo.SumByBalance(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance amount: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithBalance{
			Transaction:   t,
			BalanceName:   b.Name,
			ActualBalance: sum,
		},
	}, nil
}
