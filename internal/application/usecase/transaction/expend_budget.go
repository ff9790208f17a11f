// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// ExpendBudgetInput represents the input for recording a budget expense.
type ExpendBudgetInput struct {
	UserID      uuid.UUID
	BalanceID   uuid.UUID
	BudgetID    uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// ExpendBudgetOutput represents the output of recording a budget expense.
type ExpendBudgetOutput struct {
	Transaction *entity.TransactionWithBalance
}

// ExpendBudgetUseCase records an expense against a balance and tags it with
// a budget so the budget's remaining amount reflects the spend.
type ExpendBudgetUseCase struct {
	transactionRepo adapter.TransactionRepository
	balanceRepo     adapter.BalanceRepository
	budgetRepo      adapter.BudgetRepository
}

// NewExpendBudgetUseCase creates a new ExpendBudgetUseCase instance.
func NewExpendBudgetUseCase(
	transactionRepo adapter.TransactionRepository,
	balanceRepo adapter.BalanceRepository,
	budgetRepo adapter.BudgetRepository,
) *ExpendBudgetUseCase {
	return &ExpendBudgetUseCase{
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute records the tagged expense. Both the balance and the budget must
// belong to the requesting user, and the description is required so the
// spend can be traced later.
func (uc *ExpendBudgetUseCase) Execute(ctx context.Context, input ExpendBudgetInput) (*ExpendBudgetOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDescription,
			"description must not be blank",
			domainerror.ErrInvalidTransactionDescription,
		)
	}

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

	bgt, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetAccessDeniedError()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if bgt.UserID != input.UserID {
		return nil, budgetAccessDeniedError()
	}

	budgetID := bgt.ID
	t := entity.NewTransaction(input.UserID, b.ID, &budgetID, input.Amount.Abs().Neg(), input.Description)

	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	sum, err := uc.transactionRepo.SumByBalance(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance amount: %w", err)
	}

	return &ExpendBudgetOutput{
		Transaction: &entity.TransactionWithBalance{
			Transaction:   t,
			BalanceName:   b.Name,
			ActualBalance: sum,
		},
	}, nil
}

func budgetAccessDeniedError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeBudgetDoesNotBelongToUser,
		"budget does not belong to user",
		domainerror.ErrBudgetDoesNotBelongToUser,
	)
}
