// Package balance contains balance-related use cases.
package balance

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

// GetBalanceInput represents the input for a balance lookup.
type GetBalanceInput struct {
	UserID    uuid.UUID
	BalanceID uuid.UUID
}

// GetBalanceOutput represents the output of a balance lookup.
type GetBalanceOutput struct {
	Balance       *entity.Balance
	ActualBalance decimal.Decimal
}

// GetBalanceUseCase handles ownership-checked balance lookups.
type GetBalanceUseCase struct {
	balanceRepo     adapter.BalanceRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(balanceRepo adapter.BalanceRepository, transactionRepo adapter.TransactionRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute looks up a single balance. Absent balances, balances of other
// users and system balances are all reported as not found.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	b, err := uc.balanceRepo.FindByID(ctx, input.BalanceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	if b.UserID != input.UserID || b.System {
		return nil, notFoundError()
	}

	actual, err := uc.transactionRepo.SumByBalance(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute actual balance: %w", err)
	}

	return &GetBalanceOutput{
		Balance:       b,
		ActualBalance: actual,
	}, nil
}

func notFoundError() error {
	return domainerror.NewBalanceError(
		domainerror.ErrCodeBalanceNotFound,
		"balance not found",
		domainerror.ErrBalanceNotFound,
	)
}
