// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Rows are append-only; there is no updated timestamp or soft delete.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	BalanceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BudgetID    *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	OccurredAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		BalanceID:   m.BalanceID,
		BudgetID:    m.BudgetID,
		Amount:      m.Amount,
		Description: m.Description,
		OccurredAt:  m.OccurredAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		BalanceID:   transaction.BalanceID,
		BudgetID:    transaction.BudgetID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		OccurredAt:  transaction.OccurredAt,
	}
}
