// Package budget contains budget-related use cases.
package budget

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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID        uuid.UUID
	Name          string
	Currency      string
	InitialAmount decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetName,
			"budget name must not be blank",
			domainerror.ErrInvalidBudgetName,
		)
	}

	if strings.TrimSpace(input.Currency) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCurrency,
			"currency must not be blank",
			domainerror.ErrInvalidBudgetCurrency,
		)
	}

	if input.InitialAmount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidInitialAmount,
			"initial amount must not be negative",
			domainerror.ErrInvalidInitialAmount,
		)
	}

	b := entity.NewBudget(input.UserID, input.Name, input.Currency, input.InitialAmount)

	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: b,
	}, nil
}
