// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Currency      string  `json:"currency" binding:"required,len=3"`
	InitialAmount float64 `json:"initial_amount" binding:"gte=0"`
}

// RenameBudgetRequest represents the request body for a budget rename.
type RenameBudgetRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Currency       string    `json:"currency"`
	InitialAmount  float64   `json:"initial_amount"`
	CurrentAmount  float64   `json:"current_amount"`
	RelativeAmount float64   `json:"relative_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetWithAmounts to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.BudgetWithAmounts) BudgetResponse {
	return BudgetResponse{
		ID:             b.Budget.ID.String(),
		Name:           b.Budget.Name,
		Currency:       b.Budget.Currency,
		InitialAmount:  b.Budget.InitialAmount.InexactFloat64(),
		CurrentAmount:  b.CurrentAmount.InexactFloat64(),
		RelativeAmount: b.RelativeAmount.InexactFloat64(),
		CreatedAt:      b.Budget.CreatedAt,
		UpdatedAt:      b.Budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of BudgetWithAmounts to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithAmounts) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
