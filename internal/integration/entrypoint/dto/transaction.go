// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a transaction.
type CreateTransactionRequest struct {
	BalanceID   string  `json:"balance_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// ExpendBudgetRequest represents the request body for recording a budget expense.
type ExpendBudgetRequest struct {
	BalanceID   string  `json:"balance_id" binding:"required,uuid"`
	BudgetID    string  `json:"budget_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,min=1"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	BalanceID     string    `json:"balance_id"`
	BalanceName   string    `json:"balance_name"`
	BudgetID      *string   `json:"budget_id,omitempty"`
	Amount        float64   `json:"amount"`
	ActualBalance float64   `json:"actual_balance"`
	Description   string    `json:"description"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionWithBalance to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.TransactionWithBalance) TransactionResponse {
	response := TransactionResponse{
		ID:            t.Transaction.ID.String(),
		BalanceID:     t.Transaction.BalanceID.String(),
		BalanceName:   t.BalanceName,
		Amount:        t.Transaction.Amount.InexactFloat64(),
		ActualBalance: t.ActualBalance.InexactFloat64(),
		Description:   t.Transaction.Description,
		OccurredAt:    t.Transaction.OccurredAt,
	}

	if t.Transaction.BudgetID != nil {
		budgetID := t.Transaction.BudgetID.String()
		response.BudgetID = &budgetID
	}

	return response
}

// ToTransactionListResponse converts a list of TransactionWithBalance to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithBalance) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
	}
}

// CurrencyListResponse represents the response for listing supported currencies.
type CurrencyListResponse struct {
	Currencies []string `json:"currencies"`
}
