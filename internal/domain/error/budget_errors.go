// Package error defines domain-specific errors for the Cash Organizer application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetName is returned when a budget name is blank.
	ErrInvalidBudgetName = errors.New("invalid budget name")

	// ErrInvalidBudgetCurrency is returned when a currency code is blank.
	ErrInvalidBudgetCurrency = errors.New("invalid budget currency")

	// ErrInvalidInitialAmount is returned when the initial amount is negative.
	ErrInvalidInitialAmount = errors.New("invalid initial amount")

	// ErrUnauthorizedBudgetAccess is returned when a budget belongs to a different user.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetName     BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetCurrency BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidInitialAmount  BudgetErrorCode = "BGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BGT-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
