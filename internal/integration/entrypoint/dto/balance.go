// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// CreateBalanceRequest represents the request body for balance creation.
type CreateBalanceRequest struct {
	Name                   string `json:"name" binding:"required,min=1,max=255"`
	Currency               string `json:"currency" binding:"required,len=3"`
	AnnualIncomePercentage int    `json:"annual_income_percentage" binding:"gte=0"`
}

// RenameBalanceRequest represents the request body for a balance rename.
type RenameBalanceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// BalanceResponse represents a single balance in API responses.
type BalanceResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Currency               string    `json:"currency"`
	AnnualIncomePercentage int       `json:"annual_income_percentage"`
	ActualBalance          float64   `json:"actual_balance"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// BalanceListResponse represents the response for listing balances.
type BalanceListResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// ToBalanceResponse converts a balance and its derived amount to a
// BalanceResponse DTO.
func ToBalanceResponse(b *entity.Balance, actualBalance decimal.Decimal) BalanceResponse {
	return BalanceResponse{
		ID:                     b.ID.String(),
		Name:                   b.Name,
		Currency:               b.Currency,
		AnnualIncomePercentage: b.AnnualIncomePercentage,
		ActualBalance:          actualBalance.InexactFloat64(),
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// ToBalanceListResponse converts a list of BalanceWithAmount to BalanceListResponse.
func ToBalanceListResponse(balances []*entity.BalanceWithAmount) BalanceListResponse {
	responses := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = ToBalanceResponse(b.Balance, b.ActualBalance)
	}
	return BalanceListResponse{
		Balances: responses,
	}
}
