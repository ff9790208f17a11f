// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents an immutable signed monetary entry against a
// balance. Positive amounts are income, negative amounts are expenses.
// A transaction may additionally be tagged with a budget for expense
// tracking; the tag does not change the amount's effect on the balance.
// Transactions are never updated or deleted once created.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BalanceID   uuid.UUID
	BudgetID    *uuid.UUID // Optional budget tag
	Amount      decimal.Decimal
	OccurredAt  time.Time
	Description string
}

// NewTransaction creates a new Transaction entity timestamped now.
func NewTransaction(userID, balanceID uuid.UUID, budgetID *uuid.UUID, amount decimal.Decimal, description string) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		BalanceID:   balanceID,
		BudgetID:    budgetID,
		Amount:      amount,
		OccurredAt:  time.Now().UTC(),
		Description: description,
	}
}

// TransactionWithBalance pairs a transaction with the name and derived
// actual balance of the balance it was recorded against.
type TransactionWithBalance struct {
	Transaction   *Transaction
	BalanceName   string
	ActualBalance decimal.Decimal
}
