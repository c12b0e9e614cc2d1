// Package error defines domain-specific errors for the POS application.
package error

import "errors"

// Auth and admin domain errors.
var (
	// ErrInvalidCredentials is returned when username or password do not match.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAdminNotFound is returned when an admin account is not found.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrUsernameTaken is returned when an admin username is already in use.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrLastAdmin is returned when deleting the only remaining admin account.
	ErrLastAdmin = errors.New("cannot delete the last admin account")

	// ErrInvalidAdminRole is returned when the role is not a known role.
	ErrInvalidAdminRole = errors.New("invalid admin role")

	// ErrInvalidToken is returned when an access token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode represents authentication error codes.
type AuthErrorCode string

// Auth error codes.
const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010003"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010004"
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
