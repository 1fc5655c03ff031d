// Package error defines domain-specific errors for the Phoenix Field API.
package error

import "errors"

// Spreadsheet data source errors. Cell-level parse failures are never
// errors; these cover the transport and snapshot lifecycle only.
var (
	// ErrSheetFetchFailed is returned when the spreadsheet source could not
	// be reached or returned an unreadable payload.
	ErrSheetFetchFailed = errors.New("failed to fetch sheet data")

	// ErrNoSnapshot is returned when data is requested before any fetch has
	// succeeded. A failed fetch must not silently substitute empty data.
	ErrNoSnapshot = errors.New("no sheet snapshot available")

	// ErrStaleFetch is returned when a completed fetch is superseded by a
	// newer one and its result is discarded.
	ErrStaleFetch = errors.New("fetch result superseded by a newer snapshot")
)

// SheetErrorCode defines error codes for data source errors.
type SheetErrorCode string

const (
	ErrCodeSheetFetchFailed SheetErrorCode = "SHEET-010001"
	ErrCodeSheetUnavailable SheetErrorCode = "SHEET-010002"
)

// SheetError represents a data source error with code and message.
type SheetError struct {
	Code    SheetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SheetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError with the given code and message.
func NewSheetError(code SheetErrorCode, message string, err error) *SheetError {
	return &SheetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
