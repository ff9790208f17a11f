// Package balance contains balance-related use cases.
package balance

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// CreateBalanceInput represents the input for balance creation.
type CreateBalanceInput struct {
	UserID                 uuid.UUID
	Name                   string
	Currency               string
	AnnualIncomePercentage int
}

// CreateBalanceOutput represents the output of balance creation.
type CreateBalanceOutput struct {
	Balance *entity.Balance
}

// CreateBalanceUseCase handles balance creation logic.
type CreateBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
}

// NewCreateBalanceUseCase creates a new CreateBalanceUseCase instance.
func NewCreateBalanceUseCase(balanceRepo adapter.BalanceRepository) *CreateBalanceUseCase {
	return &CreateBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute performs the balance creation. Balances created here are always
// user-visible; system balances only ever come from goal creation.
func (uc *CreateBalanceUseCase) Execute(ctx context.Context, input CreateBalanceInput) (*CreateBalanceOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBalanceError(
			domainerror.ErrCodeInvalidBalanceName,
			"balance name must not be blank",
			domainerror.ErrInvalidBalanceName,
		)
	}

	if strings.TrimSpace(input.Currency) == "" {
		return nil, domainerror.NewBalanceError(
			domainerror.ErrCodeInvalidBalanceCurrency,
			"currency must not be blank",
			domainerror.ErrInvalidBalanceCurrency,
		)
	}

	if input.AnnualIncomePercentage < 0 {
		return nil, domainerror.NewBalanceError(
			domainerror.ErrCodeInvalidIncomePercentage,
			"annual income percentage must not be negative",
			domainerror.ErrInvalidIncomePercentage,
		)
	}

	b := entity.NewBalance(input.UserID, input.Name, input.Currency, input.AnnualIncomePercentage)

	if err := uc.balanceRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create balance: %w", err)
	}

	return &CreateBalanceOutput{
		Balance: b,
	}, nil
}
