// Package error defines domain-specific errors for the Cash Organizer application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBalanceDoesNotBelongToUser is returned when recording a transaction
	// against a balance owned by a different user.
	ErrBalanceDoesNotBelongToUser = errors.New("balance does not belong to user")

	// ErrBudgetDoesNotBelongToUser is returned when tagging a transaction with
	// a budget owned by a different user.
	ErrBudgetDoesNotBelongToUser = errors.New("budget does not belong to user")

	// ErrInvalidTransactionDescription is returned when a budget expense is
	// recorded without a description.
	ErrInvalidTransactionDescription = errors.New("invalid transaction description")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionDescription TransactionErrorCode = "TRX-010001"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TRX-020001"

	// Authorization errors (03XXXX)
	ErrCodeBalanceDoesNotBelongToUser TransactionErrorCode = "TRX-030001"
	ErrCodeBudgetDoesNotBelongToUser  TransactionErrorCode = "TRX-030002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
