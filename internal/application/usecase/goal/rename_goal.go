// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// RenameGoalInput represents the input for a goal rename.
type RenameGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Name   string
}

// RenameGoalOutput represents the output of a goal rename.
type RenameGoalOutput struct {
	Goal *entity.Goal
}

// RenameGoalUseCase handles goal rename logic.
type RenameGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewRenameGoalUseCase creates a new RenameGoalUseCase instance.
func NewRenameGoalUseCase(goalRepo adapter.GoalRepository) *RenameGoalUseCase {
	return &RenameGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the rename. The backing balance keeps its original name;
// only the goal row changes.
func (uc *RenameGoalUseCase) Execute(ctx context.Context, input RenameGoalInput) (*RenameGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must not be blank",
			domainerror.ErrInvalidGoalName,
		)
	}

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

	g.Name = input.Name
	g.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to rename goal: %w", err)
	}

	return &RenameGoalOutput{
		Goal: g,
	}, nil
}
