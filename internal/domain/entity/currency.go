// Package entity defines the core business entities for the domain layer.
package entity

// SupportedCurrencies lists the ISO 4217 codes accepted for balances,
// budgets and goals.
var SupportedCurrencies = []string{"USD", "RUB", "EUR"}
