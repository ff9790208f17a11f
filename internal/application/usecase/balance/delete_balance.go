// Package balance contains balance-related use cases.
package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cash-organizer/backend/internal/application/adapter"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// DeleteBalanceInput represents the input for balance deletion.
type DeleteBalanceInput struct {
	UserID    uuid.UUID
	BalanceID uuid.UUID
}

// DeleteBalanceOutput represents the output of balance deletion.
type DeleteBalanceOutput struct {
	// Deleted is false when the target was a system balance, which is
	// silently left untouched.
	Deleted bool
}

// DeleteBalanceUseCase handles balance deletion logic.
type DeleteBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
}

// NewDeleteBalanceUseCase creates a new DeleteBalanceUseCase instance.
func NewDeleteBalanceUseCase(balanceRepo adapter.BalanceRepository) *DeleteBalanceUseCase {
	return &DeleteBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute performs the deletion. Deleting a system balance is a no-op:
// goal-backing balances are lifecycle-bound to their goal and cannot be
// removed directly. Deleting a visible balance also removes all of its
// transactions in the same commit.
func (uc *DeleteBalanceUseCase) Execute(ctx context.Context, input DeleteBalanceInput) (*DeleteBalanceOutput, error) {
	b, err := uc.balanceRepo.FindByID(ctx, input.BalanceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	if b.UserID != input.UserID {
		return nil, notFoundError()
	}

	if b.System {
		return &DeleteBalanceOutput{Deleted: false}, nil
	}

	if err := uc.balanceRepo.DeleteWithTransactions(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to delete balance: %w", err)
	}

	return &DeleteBalanceOutput{Deleted: true}, nil
}
