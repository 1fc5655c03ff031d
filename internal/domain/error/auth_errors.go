// Package error defines domain-specific errors for the Phoenix Field API.
package error

import "errors"

// Authentication and authorization domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials do not match
	// any roster row.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied is returned when an authenticated identity is not
	// present in the employee roster. The roster is the authority for both
	// identity and role, so this is distinct from a failed login.
	ErrAccessDenied = errors.New("access denied: not in employee roster")

	// ErrViewAsNotPermitted is returned when a representative-tier actor
	// requests to view as another identity.
	ErrViewAsNotPermitted = errors.New("profile switching not permitted for this role")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"

	// Authorization errors (03XXXX)
	ErrCodeAccessDenied        AuthErrorCode = "AUTH-030001"
	ErrCodeViewAsNotPermitted  AuthErrorCode = "AUTH-030002"
	ErrCodeViewAsUnknownTarget AuthErrorCode = "AUTH-030003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
