package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes attached to AppErrors. Storage errors caused by a constraint
// violation or an expired deadline carry their own code.
const (
	CodeValidation = "VALIDATION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeStorage    = "STORAGE_ERROR"
	CodeConstraint = "CONSTRAINT_VIOLATION"
	CodeTimeout    = "TIMEOUT"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    CodeValidation,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    CodeNotFound,
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewStorageError creates a new storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    CodeStorage,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewConstraintError creates a storage error for a violated table constraint
func NewConstraintError(operation string, cause error) *AppError {
	err := NewStorageError(operation, cause)
	err.Code = CodeConstraint
	return err
}

// NewTimeoutError creates a storage error for an operation whose deadline
// expired
func NewTimeoutError(operation string, cause error) *AppError {
	err := NewStorageError(operation, cause)
	err.Code = CodeTimeout
	return err
}

// FromStorage classifies an error returned by the storage layer. AppErrors
// pass through. Other errors become storage errors, coded as timeouts when a
// deadline expired.
func FromStorage(operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(operation, err)
	}
	return NewStorageError(operation, err)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// HTTPStatus maps an error to the HTTP status code returned to clients.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return http.StatusBadRequest
		case ErrorTypeNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeStorage:
			// storage failures expose the driver message to the client
			return "Error: " + appErr.Error()
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return "Error: " + err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound:
			return false // These are user errors, not system errors
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
