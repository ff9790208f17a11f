// Package balance contains balance-related use cases.
package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
)

// ListBalancesInput represents the input for listing balances.
type ListBalancesInput struct {
	UserID   uuid.UUID
	Currency string // Optional ISO 4217 filter; empty means all currencies
}

// ListBalancesOutput represents the output of listing balances.
type ListBalancesOutput struct {
	Balances []*entity.BalanceWithAmount
}

// ListBalancesUseCase handles listing the user-visible balances.
type ListBalancesUseCase struct {
	balanceRepo     adapter.BalanceRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBalancesUseCase creates a new ListBalancesUseCase instance.
func NewListBalancesUseCase(balanceRepo adapter.BalanceRepository, transactionRepo adapter.TransactionRepository) *ListBalancesUseCase {
	return &ListBalancesUseCase{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's non-system balances with their derived actual
// balances. System balances backing goals never appear here.
func (uc *ListBalancesUseCase) Execute(ctx context.Context, input ListBalancesInput) (*ListBalancesOutput, error) {
	balances, err := uc.balanceRepo.FindVisibleByUser(ctx, input.UserID, input.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}

	output := &ListBalancesOutput{
		Balances: make([]*entity.BalanceWithAmount, 0, len(balances)),
	}

	for _, b := range balances {
		actual, err := uc.transactionRepo.SumByBalance(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute actual balance: %w", err)
		}

		output.Balances = append(output.Balances, &entity.BalanceWithAmount{
			Balance:       b,
			ActualBalance: actual,
		})
	}

	return output, nil
}
