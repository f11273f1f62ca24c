// Package errors provides standardized error handling for wrap-pkg-config.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the application
const (
	// Tool related errors
	ErrToolNotFound    = "tool_not_found"
	ErrExecutionFailed = "execution_failed"

	// Configuration related errors
	ErrConfigInvalid = "config_invalid"
)

// AppError represents an application-specific error
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError creates a new AppError
func NewError(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// codeOf returns the code of the first AppError in err's chain.
func codeOf(err error) (string, bool) {
	var appErr *AppError
	if err == nil || !stderrors.As(err, &appErr) {
		return "", false
	}
	return appErr.Code, true
}

// IsNotFound returns true if the tool could not be located
func IsNotFound(err error) bool {
	code, ok := codeOf(err)
	return ok && code == ErrToolNotFound
}

// IsInvalidInput returns true if the error is related to invalid configuration
func IsInvalidInput(err error) bool {
	code, ok := codeOf(err)
	return ok && code == ErrConfigInvalid
}
