package cli

import (
	"fmt"

	"todo-app/internal/errors"
)

// Exit codes reported by the todo binary
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInvalid  = 2
	ExitNotFound = 3
	ExitStorage  = 4
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// commandError carries the user-facing message while keeping the cause
// reachable for ExitCode
type commandError struct {
	msg string
	err error
}

func (e *commandError) Error() string { return e.msg }
func (e *commandError) Unwrap() error { return e.err }

// Handle provides user-friendly error messages with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return &commandError{
			msg: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			err: err,
		}
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// ExitCode maps a command error to the process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case eh.IsValidationError(err):
		return ExitInvalid
	case eh.IsNotFoundError(err):
		return ExitNotFound
	case eh.IsStorageError(err):
		return ExitStorage
	default:
		return ExitFailure
	}
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}
