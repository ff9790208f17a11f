// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithAmounts
}

// ListBudgetsUseCase handles listing budgets.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's budgets with derived current and relative
// amounts. The current amount is the initial amount plus the sum of all
// tagged transactions, recomputed on every read.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*entity.BudgetWithAmounts, 0, len(budgets)),
	}

	for _, b := range budgets {
		tagged, err := uc.transactionRepo.SumByBudget(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute budget amount: %w", err)
		}

		current := b.InitialAmount.Add(tagged)
		output.Budgets = append(output.Budgets, &entity.BudgetWithAmounts{
			Budget:         b,
			CurrentAmount:  current,
			RelativeAmount: b.RelativeAmount(current),
		})
	}

	return output, nil
}
