// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Budget represents an expense envelope. Its current amount is derived from
// the initial amount plus the sum of all transactions tagged with it.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Currency      string // ISO 4217 code
	Name          string
	InitialAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, name, currency string, initialAmount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:            uuid.New(),
		UserID:        userID,
		Currency:      currency,
		Name:          name,
		InitialAmount: initialAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RelativeAmount reports the current amount as a percentage of the initial
// amount, rounded to two decimal places. A zero initial amount yields zero
// instead of a division error.
func (b *Budget) RelativeAmount(currentAmount decimal.Decimal) decimal.Decimal {
	if b.InitialAmount.IsZero() {
		return decimal.Zero
	}
	return currentAmount.Mul(oneHundred).DivRound(b.InitialAmount, 2)
}

// BudgetWithAmounts pairs a budget with its derived amounts.
type BudgetWithAmounts struct {
	Budget         *Budget
	CurrentAmount  decimal.Decimal
	RelativeAmount decimal.Decimal
}
