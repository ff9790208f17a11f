// Package budget contains budget-related use cases.
package budget

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

// RenameBudgetInput represents the input for a budget rename.
type RenameBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Name     string
}

// RenameBudgetOutput represents the output of a budget rename.
type RenameBudgetOutput struct {
	Budget *entity.Budget
}

// RenameBudgetUseCase handles budget rename logic. Renaming a budget
// that belongs to another user is treated as an access violation.
type RenameBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewRenameBudgetUseCase creates a new RenameBudgetUseCase instance.
func NewRenameBudgetUseCase(budgetRepo adapter.BudgetRepository) *RenameBudgetUseCase {
	return &RenameBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the rename.
func (uc *RenameBudgetUseCase) Execute(ctx context.Context, input RenameBudgetInput) (*RenameBudgetOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetName,
			"budget name must not be blank",
			domainerror.ErrInvalidBudgetName,
		)
	}

	b, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if b.UserID != input.UserID {
		return nil, accessDeniedError()
	}

	b.Name = input.Name
	b.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to rename budget: %w", err)
	}

	return &RenameBudgetOutput{
		Budget: b,
	}, nil
}

func accessDeniedError() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeUnauthorizedBudgetAccess,
		"not authorized to modify this budget",
		domainerror.ErrUnauthorizedBudgetAccess,
	)
}
