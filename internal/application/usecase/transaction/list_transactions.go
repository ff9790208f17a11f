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

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	// BalanceIDs optionally restricts the listing to the given balances.
	// Every listed balance must belong to the requesting user.
	BalanceIDs []uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithBalance
}

// ListTransactionsUseCase handles listing transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	balanceRepo     adapter.BalanceRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, balanceRepo adapter.BalanceRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
	}
}

// Execute lists transactions together with the name and derived amount of
// the balance each one was recorded against. Balance amounts are computed
// once per distinct balance, not once per transaction.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)

	if len(input.BalanceIDs) > 0 {
		for _, id := range input.BalanceIDs {
			b, err := uc.balanceRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, domainerror.ErrBalanceNotFound) {
					return nil, balanceAccessDeniedError()
				}
				return nil, fmt.Errorf("failed to find balance: %w", err)
			}
			if b.UserID != input.UserID || b.System {
				return nil, balanceAccessDeniedError()
			}
		}
		transactions, err = uc.transactionRepo.FindByBalanceIDs(ctx, input.BalanceIDs)
	} else {
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	names := make(map[uuid.UUID]string)
	amounts := make(map[uuid.UUID]decimal.Decimal)

	output := &ListTransactionsOutput{
		Transactions: make([]*entity.TransactionWithBalance, 0, len(transactions)),
	}

	for _, t := range transactions {
		name, ok := names[t.BalanceID]
		if !ok {
			b, err := uc.balanceRepo.FindByID(ctx, t.BalanceID)
			if err != nil {
				return nil, fmt.Errorf("failed to find balance: %w", err)
			}
			sum, err := uc.transactionRepo.SumByBalance(ctx, t.BalanceID)
			if err != nil {
				return nil, fmt.Errorf("failed to compute balance amount: %w", err)
			}
			name = b.Name
			names[t.BalanceID] = name
			amounts[t.BalanceID] = sum
		}

		output.Transactions = append(output.Transactions, &entity.TransactionWithBalance{
			Transaction:   t,
			BalanceName:   name,
			ActualBalance: amounts[t.BalanceID],
		})
	}

	return output, nil
}

func balanceAccessDeniedError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeBalanceDoesNotBelongToUser,
		"balance does not belong to user",
		domainerror.ErrBalanceDoesNotBelongToUser,
	)
}
