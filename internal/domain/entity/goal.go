// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target funded through a hidden system balance.
// Invariant: Goal.Currency always equals the backing balance's currency;
// it is enforced at creation and never changed afterwards.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BalanceID     uuid.UUID // Backing system balance
	Currency      string    // ISO 4217 code
	Name          string
	InitialAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity backed by the given system balance.
func NewGoal(userID, balanceID uuid.UUID, name, currency string, initialAmount decimal.Decimal) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		BalanceID:     balanceID,
		Currency:      currency,
		Name:          name,
		InitialAmount: initialAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsDeletable reports whether the goal may be deleted at the given funding
// level: fully unfunded (zero) or fully funded (at or above the target).
// A partially funded goal cannot be deleted.
func (g *Goal) IsDeletable(currentAmount decimal.Decimal) bool {
	return currentAmount.IsZero() || currentAmount.GreaterThanOrEqual(g.InitialAmount)
}

// GoalWithAmount pairs a goal with the derived funding state of its
// backing balance.
type GoalWithAmount struct {
	Goal          *Goal
	CurrentAmount decimal.Decimal
	IsDeletable   bool
}
