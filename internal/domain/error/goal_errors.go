// Package error defines domain-specific errors for the Cash Organizer application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalName is returned when a goal name is blank.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidGoalCurrency is returned when a currency code is blank.
	ErrInvalidGoalCurrency = errors.New("invalid goal currency")

	// ErrInvalidGoalAmount is returned when the target amount is negative.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrInvalidFulfillAmount is returned when a fulfillment amount is not positive.
	ErrInvalidFulfillAmount = errors.New("fulfillment amount must be positive")

	// ErrGoalCurrencyMismatch is returned when fulfilling a goal from a balance
	// held in a different currency.
	ErrGoalCurrencyMismatch = errors.New("goal and balance currencies do not match")

	// ErrUnauthorizedGoalAccess is returned when a goal belongs to a different user.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalName     GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalCurrency GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalAmount   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidFulfillAmount GoalErrorCode = "GOL-010004"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-030001"

	// Transfer errors (04XXXX)
	ErrCodeGoalCurrencyMismatch GoalErrorCode = "GOL-040001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
