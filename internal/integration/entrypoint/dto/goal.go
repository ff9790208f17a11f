// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Currency      string  `json:"currency" binding:"required,len=3"`
	InitialAmount float64 `json:"initial_amount" binding:"gte=0"`
}

// RenameGoalRequest represents the request body for a goal rename.
type RenameGoalRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// FulfillGoalRequest represents the request body for a goal fulfillment.
type FulfillGoalRequest struct {
	BalanceID string  `json:"balance_id" binding:"required,uuid"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	InitialAmount float64   `json:"initial_amount"`
	CurrentAmount float64   `json:"current_amount"`
	IsDeletable   bool      `json:"is_deletable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalWithAmount to a GoalResponse DTO.
func ToGoalResponse(g *entity.GoalWithAmount) GoalResponse {
	return GoalResponse{
		ID:            g.Goal.ID.String(),
		Name:          g.Goal.Name,
		Currency:      g.Goal.Currency,
		InitialAmount: g.Goal.InitialAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		IsDeletable:   g.IsDeletable,
		CreatedAt:     g.Goal.CreatedAt,
		UpdatedAt:     g.Goal.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of GoalWithAmount to GoalListResponse.
func ToGoalListResponse(goals []*entity.GoalWithAmount) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
