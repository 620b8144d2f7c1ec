// Package errors defines the application errors of pwa-builder. Each error
// carries an exit code and an ErrorContext that is rendered for the user.
package errors

import (
	"errors"
	"fmt"
)

// AppError is embedded by every typed error of this package.
type AppError struct {
	Message  string
	Context  *ErrorContext
	Cause    error
	ExitCode ExitCode
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// GetUserMessage renders the message, its cause and the context.
func (e *AppError) GetUserMessage() string {
	msg := "ERROR: " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf("\nCause: %v", e.Cause)
	}
	if e.Context != nil {
		msg += e.Context.Format()
	}
	return msg
}

// NewError creates an AppError without cause or context.
func NewError(message string, exitCode ExitCode) *AppError {
	return &AppError{Message: message, ExitCode: exitCode}
}

// WrapError creates an AppError around cause.
func WrapError(cause error, message string, exitCode ExitCode) *AppError {
	return &AppError{Message: message, Cause: cause, ExitCode: exitCode}
}

func newAppError(code ExitCode, cause error, ctx *ErrorContext, format string, args ...any) *AppError {
	return &AppError{
		Message:  fmt.Sprintf(format, args...),
		Context:  ctx,
		Cause:    cause,
		ExitCode: code,
	}
}

// AsAppError finds the first AppError in err's chain, looking through the
// typed wrappers defined in this package.
func AsAppError(err error) (*AppError, bool) {
	var target interface{ appError() *AppError }
	if errors.As(err, &target) {
		return target.appError(), true
	}
	return nil, false
}

func (e *AppError) appError() *AppError { return e }

// ExitCodeOf maps any error to the process exit code.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.ExitCode
	}
	return ExitGeneralError
}
