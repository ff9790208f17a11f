// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	// Deleted is false when the goal is partially funded. A goal can only be
	// removed while it is empty or once it has reached its target.
	Deleted bool
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, transactionRepo adapter.TransactionRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the deletion. A partially funded goal is silently left
// untouched so accumulated funds are never stranded by accident.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
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

	if !g.IsDeletable(current) {
		return &DeleteGoalOutput{Deleted: false}, nil
	}

	if err := uc.goalRepo.Delete(ctx, g.ID); err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	return &DeleteGoalOutput{Deleted: true}, nil
}
