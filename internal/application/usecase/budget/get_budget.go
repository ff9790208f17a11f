// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// GetBudgetInput represents the input for a budget lookup.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of a budget lookup.
type GetBudgetOutput struct {
	Budget *entity.BudgetWithAmounts
}

// GetBudgetUseCase handles ownership-checked budget lookups.
type GetBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute looks up a single budget. Budgets of other users are reported as
// not found.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	b, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if b.UserID != input.UserID {
		return nil, notFoundError()
	}

	tagged, err := uc.transactionRepo.SumByBudget(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget amount: %w", err)
	}

	current := b.InitialAmount.Add(tagged)

	return &GetBudgetOutput{
		Budget: &entity.BudgetWithAmounts{
			Budget:         b,
			CurrentAmount:  current,
			RelativeAmount: b.RelativeAmount(current),
		},
	}, nil
}

func notFoundError() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
