// Package error defines domain-specific errors for the ResolvPay application.
package error

import "errors"

// Expense ledger domain errors.
var (
	// ErrInvalidExpenseAmount is returned when the expense amount is negative or not a number.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrMissingExpenseFields is returned when a required expense field is missing.
	ErrMissingExpenseFields = errors.New("missing required fields: amount, description")
)

// ExpenseErrorCode defines error codes for expense ledger errors.
type ExpenseErrorCode string

const (
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010002"
)

// ExpenseError represents an expense ledger error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
