// Package error defines domain-specific errors for the Phoenix Field API.
package error

import "errors"

// Expense submission errors.
var (
	// ErrExpenseWebhookNotConfigured is returned when no webhook URL is set.
	ErrExpenseWebhookNotConfigured = errors.New("expense webhook not configured")

	// ErrExpenseRejected is returned when the webhook acknowledged the
	// request but reported failure.
	ErrExpenseRejected = errors.New("expense submission rejected")
)

// ExpenseErrorCode defines error codes for expense submission errors.
type ExpenseErrorCode string

const (
	ErrCodeExpenseNotConfigured ExpenseErrorCode = "EXPENSE-010001"
	ErrCodeExpenseDelivery      ExpenseErrorCode = "EXPENSE-010002"
	ErrCodeExpenseRejected      ExpenseErrorCode = "EXPENSE-010003"
	ErrCodeExpenseInvalid       ExpenseErrorCode = "EXPENSE-010004"
)

// ExpenseError represents an expense submission error with code and message.
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
