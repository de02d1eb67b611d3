package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents application error codes
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = 0

	// Construction errors
	ErrCodeInvalidKey  ErrorCode = 1001
	ErrCodeUnsupported ErrorCode = 1002

	// Configuration errors
	ErrCodeInvalidConfig ErrorCode = 2001
	ErrCodeNotFound      ErrorCode = 2004
)

// AppError represents a structured application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same code,
// so sentinel values match any error built with that code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewInvalidKey creates an invalid key error
func NewInvalidKey(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidKey,
		Message: message,
	}
}

// NewUnsupported creates an unsupported cipher type error
func NewUnsupported(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupported,
		Message: message,
	}
}

// NewInvalidConfig creates a configuration error
func NewInvalidConfig(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// NewInvalidConfigWithCause creates a configuration error with cause
func NewInvalidConfigWithCause(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFound creates a not found error
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// CodeOf returns the code of the first AppError in err's chain
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeUnknown
}
