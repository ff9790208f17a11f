// Package currency contains the currency catalog use case.
package currency

import (
	"context"

	"github.com/cash-organizer/backend/internal/domain/entity"
)

// ListCurrenciesOutput represents the output of listing supported currencies.
type ListCurrenciesOutput struct {
	Currencies []string
}

// ListCurrenciesUseCase exposes the fixed set of supported currency codes.
type ListCurrenciesUseCase struct{}

// NewListCurrenciesUseCase creates a new ListCurrenciesUseCase instance.
func NewListCurrenciesUseCase() *ListCurrenciesUseCase {
	return &ListCurrenciesUseCase{}
}

// Execute returns the supported currency codes in catalog order.
func (uc *ListCurrenciesUseCase) Execute(_ context.Context) (*ListCurrenciesOutput, error) {
	currencies := make([]string, len(entity.SupportedCurrencies))
	copy(currencies, entity.SupportedCurrencies)

	return &ListCurrenciesOutput{
		Currencies: currencies,
	}, nil
}
