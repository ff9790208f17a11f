// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cash-organizer/backend/internal/application/usecase/currency"
	"github.com/cash-organizer/backend/internal/integration/entrypoint/dto"
)

// CurrencyController handles currency catalog endpoints.
type CurrencyController struct {
	listUseCase *currency.ListCurrenciesUseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(listUseCase *currency.ListCurrenciesUseCase) *CurrencyController {
	return &CurrencyController{
		listUseCase: listUseCase,
	}
}

// List handles GET /currencies requests.
func (c *CurrencyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve currencies",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CurrencyListResponse{
		Currencies: output.Currencies,
	})
}
