// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cash-organizer/backend/internal/application/usecase/balance"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/dto"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles balance endpoints.
type BalanceController struct {
	listUseCase   *balance.ListBalancesUseCase
	getUseCase    *balance.GetBalanceUseCase
	createUseCase *balance.CreateBalanceUseCase
	renameUseCase *balance.RenameBalanceUseCase
	deleteUseCase *balance.DeleteBalanceUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	listUseCase *balance.ListBalancesUseCase,
	getUseCase *balance.GetBalanceUseCase,
	createUseCase *balance.CreateBalanceUseCase,
	renameUseCase *balance.RenameBalanceUseCase,
	deleteUseCase *balance.DeleteBalanceUseCase,
) *BalanceController {
	return &BalanceController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		renameUseCase: renameUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /balances requests. An optional currency query parameter
// filters the listing by currency code.
func (c *BalanceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	input := balance.ListBalancesInput{
		UserID:   userID,
		Currency: ctx.Query("currency"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceListResponse(output.Balances))
}

// Get handles GET /balances/:id requests.
func (c *BalanceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	balanceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid balance ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), balance.GetBalanceInput{
		UserID:    userID,
		BalanceID: balanceID,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output.Balance, output.ActualBalance))
}

// Create handles POST /balances requests.
func (c *BalanceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), balance.CreateBalanceInput{
		UserID:                 userID,
		Name:                   req.Name,
		Currency:               req.Currency,
		AnnualIncomePercentage: req.AnnualIncomePercentage,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// A fresh balance has no transactions yet, so its actual balance is zero.
	ctx.JSON(http.StatusCreated, dto.ToBalanceResponse(output.Balance, decimal.Zero))
}

// Rename handles PATCH /balances/:id requests.
func (c *BalanceController) Rename(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	balanceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid balance ID format",
		})
		return
	}

	var req dto.RenameBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), balance.RenameBalanceInput{
		UserID:    userID,
		BalanceID: balanceID,
		Name:      req.Name,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output.Balance, decimal.Zero))
}

// Delete handles DELETE /balances/:id requests.
func (c *BalanceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	balanceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Invalid balance ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), balance.DeleteBalanceInput{
		UserID:    userID,
		BalanceID: balanceID,
	}); err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBalanceError handles balance errors and returns appropriate HTTP responses.
func (c *BalanceController) handleBalanceError(ctx *gin.Context, err error) {
	var balanceErr *domainerror.BalanceError
	if errors.As(err, &balanceErr) {
		statusCode := c.getStatusCodeForBalanceError(balanceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: balanceErr.Message,
			Code:  string(balanceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBalanceError maps balance error codes to HTTP status codes.
func (c *BalanceController) getStatusCodeForBalanceError(code domainerror.BalanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeBalanceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBalanceAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBalanceName,
		domainerror.ErrCodeInvalidBalanceCurrency,
		domainerror.ErrCodeInvalidIncomePercentage:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// unauthenticated writes the shared missing-authentication response.
func unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
