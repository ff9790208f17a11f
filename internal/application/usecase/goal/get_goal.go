// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// GetGoalInput represents the input for a goal lookup.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of a goal lookup.
type GetGoalOutput struct {
	Goal *entity.GoalWithAmount
}

// GetGoalUseCase handles ownership-checked goal lookups.
type GetGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, transactionRepo adapter.TransactionRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute looks up a single goal. Goals of other users are reported as not
// found.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if g.UserID != input.UserID {
		return nil, notFoundError()
	}

	current, err := uc.transactionRepo.SumByBalance(ctx, g.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute goal amount: %w", err)
	}

	return &GetGoalOutput{
		Goal: &entity.GoalWithAmount{
			Goal:          g,
			CurrentAmount: current,
			IsDeletable:   g.IsDeletable(current),
		},
	}, nil
}

func notFoundError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
