// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance represents a named monetary account held in a single currency.
// A system balance backs a savings goal: it is hidden from listings and
// lookups and is never created, renamed or deleted directly by the user.
type Balance struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	Currency               string // ISO 4217 code
	Name                   string
	AnnualIncomePercentage int // Informational only
	System                 bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewBalance creates a new user-visible Balance entity.
func NewBalance(userID uuid.UUID, name, currency string, annualIncomePercentage int) *Balance {
	now := time.Now().UTC()
	return &Balance{
		ID:                     uuid.New(),
		UserID:                 userID,
		Currency:               currency,
		Name:                   name,
		AnnualIncomePercentage: annualIncomePercentage,
		System:                 false,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// NewSystemBalance creates the hidden balance that backs a goal.
func NewSystemBalance(userID uuid.UUID, goalName, currency string) *Balance {
	b := NewBalance(userID, fmt.Sprintf("System balance for %s goal", goalName), currency, 0)
	b.System = true
	return b
}

// BalanceWithAmount pairs a balance with its derived actual balance,
// the sum of all transaction amounts recorded against it.
type BalanceWithAmount struct {
	Balance       *Balance
	ActualBalance decimal.Decimal
}
