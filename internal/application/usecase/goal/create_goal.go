// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	Currency      string
	InitialAmount decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.GoalWithAmount
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute creates a goal together with its hidden backing balance. The two
// rows are committed atomically, so a goal never exists without somewhere to
// accumulate funds.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must not be blank",
			domainerror.ErrInvalidGoalName,
		)
	}

	if strings.TrimSpace(input.Currency) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCurrency,
			"currency must not be blank",
			domainerror.ErrInvalidGoalCurrency,
		)
	}

	if input.InitialAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"target amount must not be negative",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	backing := entity.NewSystemBalance(input.UserID, input.Name, input.Currency)
	g := entity.NewGoal(input.UserID, backing.ID, input.Name, input.Currency, input.InitialAmount)

	if err := uc.goalRepo.CreateWithBalance(ctx, g, backing); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: &entity.GoalWithAmount{
			Goal:          g,
			CurrentAmount: decimal.Zero,
			IsDeletable:   g.IsDeletable(decimal.Zero),
		},
	}, nil
}
