// Package error defines domain-specific errors for the Cash Organizer application.
package error

import "errors"

// Balance domain errors.
var (
	// ErrBalanceNotFound is returned when a balance is absent, owned by another
	// user, or hidden as a system balance. The three cases are deliberately
	// indistinguishable to the caller.
	ErrBalanceNotFound = errors.New("balance not found")

	// ErrInvalidBalanceName is returned when a balance name is blank.
	ErrInvalidBalanceName = errors.New("invalid balance name")

	// ErrInvalidBalanceCurrency is returned when a currency code is blank.
	ErrInvalidBalanceCurrency = errors.New("invalid balance currency")

	// ErrInvalidIncomePercentage is returned when the annual income percentage is negative.
	ErrInvalidIncomePercentage = errors.New("invalid annual income percentage")

	// ErrUnauthorizedBalanceAccess is returned when a balance belongs to a different user.
	ErrUnauthorizedBalanceAccess = errors.New("unauthorized access to balance")
)

// BalanceErrorCode defines error codes for balance errors.
// Format: BAL-XXYYYY where XX is category and YYYY is specific error.
type BalanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBalanceName      BalanceErrorCode = "BAL-010001"
	ErrCodeInvalidBalanceCurrency  BalanceErrorCode = "BAL-010002"
	ErrCodeInvalidIncomePercentage BalanceErrorCode = "BAL-010003"

	// Lookup errors (02XXXX)
	ErrCodeBalanceNotFound BalanceErrorCode = "BAL-020001"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedBalanceAccess BalanceErrorCode = "BAL-030001"
)

// BalanceError represents a balance error with code and message.
type BalanceError struct {
	Code    BalanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BalanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// NewBalanceError creates a new BalanceError with the given code and message.
func NewBalanceError(code BalanceErrorCode, message string, err error) *BalanceError {
	return &BalanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
