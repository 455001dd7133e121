// Package error defines domain-specific errors for the ResolvPay application.
package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found in the collection.
	ErrBillNotFound = errors.New("bill not found")

	// ErrMissingBillFields is returned when a required field is missing on create or import.
	ErrMissingBillFields = errors.New("missing required fields: name, amount, dueDate")

	// ErrInvalidBillAmount is returned when the bill amount is negative or not a number.
	ErrInvalidBillAmount = errors.New("invalid bill amount")

	// ErrInvalidBillDueDate is returned when the due date cannot be parsed as a calendar date.
	ErrInvalidBillDueDate = errors.New("invalid bill due date")

	// ErrInvalidBillFrequency is returned when the frequency is not a known value.
	ErrInvalidBillFrequency = errors.New("invalid bill frequency")

	// ErrNotRecurringBill is returned when recurring generation is requested for a one-time bill.
	ErrNotRecurringBill = errors.New("cannot generate recurring bills for one-time bill")

	// ErrInvalidGenerateCount is returned when the requested occurrence count is below two.
	ErrInvalidGenerateCount = errors.New("occurrence count must be at least 2")

	// ErrEmptyBillIDs is returned when an empty list of bill IDs is provided to a bulk operation.
	ErrEmptyBillIDs = errors.New("bill IDs list cannot be empty")

	// ErrBillIDsNotFound is returned when one or more bill IDs in a bulk operation are unknown.
	ErrBillIDsNotFound = errors.New("one or more bills not found")

	// ErrInvalidImportPayload is returned when an import payload is not a JSON array of bills.
	ErrInvalidImportPayload = errors.New("invalid import payload: expected array")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBillFields    BillErrorCode = "BIL-010001"
	ErrCodeInvalidBillAmount    BillErrorCode = "BIL-010002"
	ErrCodeInvalidBillDueDate   BillErrorCode = "BIL-010003"
	ErrCodeInvalidBillFrequency BillErrorCode = "BIL-010004"
	ErrCodeBillNotFound         BillErrorCode = "BIL-010005"
	ErrCodeEmptyBillIDs         BillErrorCode = "BIL-010006"
	ErrCodeBillIDsNotFound      BillErrorCode = "BIL-010007"

	// State errors (02XXXX)
	ErrCodeNotRecurringBill     BillErrorCode = "BIL-020001"
	ErrCodeInvalidGenerateCount BillErrorCode = "BIL-020002"

	// Import/export errors (03XXXX)
	ErrCodeInvalidImportPayload BillErrorCode = "BIL-030001"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
