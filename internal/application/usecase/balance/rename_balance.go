// Package balance contains balance-related use cases.
package balance

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

// RenameBalanceInput represents the input for a balance rename.
type RenameBalanceInput struct {
	UserID    uuid.UUID
	BalanceID uuid.UUID
	Name      string
}

// RenameBalanceOutput represents the output of a balance rename.
type RenameBalanceOutput struct {
	Balance *entity.Balance
}

// RenameBalanceUseCase handles balance rename logic. The name is the only
// mutable field of a balance; currency and the system flag are fixed at
// creation.
type RenameBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
}

// NewRenameBalanceUseCase creates a new RenameBalanceUseCase instance.
func NewRenameBalanceUseCase(balanceRepo adapter.BalanceRepository) *RenameBalanceUseCase {
	return &RenameBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute performs the rename. System balances are reported as not found,
// keeping them indistinguishable from absent ids.
func (uc *RenameBalanceUseCase) Execute(ctx context.Context, input RenameBalanceInput) (*RenameBalanceOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBalanceError(
			domainerror.ErrCodeInvalidBalanceName,
			"balance name must not be blank",
			domainerror.ErrInvalidBalanceName,
		)
	}

	b, err := uc.balanceRepo.FindByID(ctx, input.BalanceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	if b.UserID != input.UserID || b.System {
		return nil, notFoundError()
	}

	b.Name = input.Name
	b.UpdatedAt = time.Now().UTC()

	if err := uc.balanceRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to rename balance: %w", err)
	}

	return &RenameBalanceOutput{
		Balance: b,
	}, nil
}
