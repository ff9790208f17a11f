// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/application/adapter"
	"github.com/cash-organizer/backend/internal/domain/entity"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// FulfillGoalInput represents the input for a goal fulfillment transfer.
type FulfillGoalInput struct {
	UserID    uuid.UUID
	GoalID    uuid.UUID
	BalanceID uuid.UUID
	Amount    decimal.Decimal
}

// FulfillGoalOutput represents the output of a goal fulfillment transfer.
type FulfillGoalOutput struct {
	Goal *entity.GoalWithAmount
}

// FulfillGoalUseCase moves funds from a visible balance into a goal's
// backing balance as an atomic debit/credit transaction pair.
type FulfillGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	balanceRepo     adapter.BalanceRepository
	transactionRepo adapter.TransactionRepository
}

// NewFulfillGoalUseCase creates a new FulfillGoalUseCase instance.
func NewFulfillGoalUseCase(
	goalRepo adapter.GoalRepository,
	balanceRepo adapter.BalanceRepository,
	transactionRepo adapter.TransactionRepository,
) *FulfillGoalUseCase {
	return &FulfillGoalUseCase{
		goalRepo:        goalRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transfer. Ownership of both the goal and the source
// balance is checked first, then the amount, then the currency pairing. The
// debit and credit are committed together, never one without the other.
func (uc *FulfillGoalUseCase) Execute(ctx context.Context, input FulfillGoalInput) (*FulfillGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, accessDeniedError()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if g.UserID != input.UserID {
		return nil, accessDeniedError()
	}

	source, err := uc.balanceRepo.FindByID(ctx, input.BalanceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, accessDeniedError()
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}
	if source.UserID != input.UserID || source.System {
		return nil, accessDeniedError()
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidFulfillAmount,
			"fulfillment amount must be positive",
			domainerror.ErrInvalidFulfillAmount,
		)
	}

	if source.Currency != g.Currency {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCurrencyMismatch,
			"goal and balance currencies do not match",
			domainerror.ErrGoalCurrencyMismatch,
		)
	}

	// The goal id keeps the entry traceable after renames.
	description := fmt.Sprintf("Fulfillment of goal %s (%q)", g.ID, g.Name)
	debit := entity.NewTransaction(input.UserID, source.ID, nil, input.Amount.Neg(), description)
	credit := entity.NewTransaction(input.UserID, g.BalanceID, nil, input.Amount, description)

	if err := uc.transactionRepo.CreatePair(ctx, debit, credit); err != nil {
		return nil, fmt.Errorf("failed to record fulfillment: %w", err)
	}

	current, err := uc.transactionRepo.SumByBalance(ctx, g.BalanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute goal amount: %w", err)
	}

	return &FulfillGoalOutput{
		Goal: &entity.GoalWithAmount{
			Goal:          g,
			CurrentAmount: current,
			IsDeletable:   g.IsDeletable(current),
		},
	}, nil
}

func accessDeniedError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeUnauthorizedGoalAccess,
		"not authorized to use this goal or balance",
		domainerror.ErrUnauthorizedGoalAccess,
	)
}
