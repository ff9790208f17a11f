// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalWithAmount
}

// ListGoalsUseCase handles listing goals.
type ListGoalsUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, transactionRepo adapter.TransactionRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's goals. Each goal's current amount is the sum of
// transactions on its backing balance, recomputed on every read.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*entity.GoalWithAmount, 0, len(goals)),
	}

	for _, g := range goals {
		current, err := uc.transactionRepo.SumByBalance(ctx, g.BalanceID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute goal amount: %w", err)
		}

		output.Goals = append(output.Goals, &entity.GoalWithAmount{
			Goal:          g,
			CurrentAmount: current,
			IsDeletable:   g.IsDeletable(current),
		})
	}

	return output, nil
}
