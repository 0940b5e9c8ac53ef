package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("task is required")
	err := NewValidationError("invalid task", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "invalid task" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "invalid task")
	}
	if err.Code != CodeValidation {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, CodeValidation)
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "7")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 7" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 7")
	}

	if err.Context["identifier"] != "7" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("insert task", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: insert task" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != CodeStorage {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, CodeStorage)
	}

	if err.Context["operation"] != "insert task" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestNewConstraintError(t *testing.T) {
	err := NewConstraintError("insert task", errors.New("UNIQUE constraint failed"))

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewConstraintError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Code != CodeConstraint {
		t.Errorf("NewConstraintError code = %v, want %v", err.Code, CodeConstraint)
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("list tasks", context.DeadlineExceeded)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewTimeoutError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Code != CodeTimeout {
		t.Errorf("NewTimeoutError code = %v, want %v", err.Code, CodeTimeout)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("NewTimeoutError should wrap its cause")
	}
}

func TestFromStorage(t *testing.T) {
	notFound := NewNotFoundError("task", "1")

	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantType ErrorType
		wantCode string
	}{
		{name: "nil stays nil", err: nil, wantNil: true},
		{name: "app errors pass through", err: notFound, wantType: ErrorTypeNotFound, wantCode: CodeNotFound},
		{name: "deadline is a storage timeout", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantType: ErrorTypeStorage, wantCode: CodeTimeout},
		{name: "anything else is storage", err: errors.New("database is locked"), wantType: ErrorTypeStorage, wantCode: CodeStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromStorage("op", tt.err)
			if tt.wantNil {
				if result != nil {
					t.Errorf("FromStorage() = %v, want nil", result)
				}
				return
			}
			if !IsErrorType(result, tt.wantType) {
				t.Errorf("FromStorage() = %v, want type %v", result, tt.wantType)
			}
			if code := GetErrorCode(result); code != tt.wantCode {
				t.Errorf("FromStorage() code = %v, want %v", code, tt.wantCode)
			}
		})
	}

	if FromStorage("op", notFound) != notFound {
		t.Errorf("FromStorage should return the same AppError instance")
	}
}

func TestAsAppError(t *testing.T) {
	appError := NewNotFoundError("task", "1")
	wrapped := fmt.Errorf("handler: %w", appError)

	result, ok := AsAppError(wrapped)
	if !ok || result != appError {
		t.Errorf("AsAppError should unwrap to the AppError")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok || result != nil {
		t.Errorf("AsAppError should return nil, false for regular error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewNotFoundError("task", "1")) {
		t.Errorf("IsNotFound should return true for not found errors")
	}
	if IsNotFound(NewStorageError("op", nil)) {
		t.Errorf("IsNotFound should return false for storage errors")
	}
	if IsNotFound(errors.New("regular error")) {
		t.Errorf("IsNotFound should return false for regular errors")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation error", NewValidationError("invalid", nil), http.StatusBadRequest},
		{"Not found error", NewNotFoundError("task", "1"), http.StatusNotFound},
		{"Storage error", NewStorageError("insert", errors.New("boom")), http.StatusInternalServerError},
		{"Constraint error", NewConstraintError("insert", errors.New("boom")), http.StatusInternalServerError},
		{"Timeout error", NewTimeoutError("query", context.DeadlineExceeded), http.StatusInternalServerError},
		{"Regular error", errors.New("regular error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.expected {
				t.Errorf("HTTPStatus() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("Task cannot be empty", nil),
			expected: "Task cannot be empty",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Storage error carries the cause",
			err:      NewStorageError("insert task", errors.New("UNIQUE constraint failed")),
			expected: "Error: storage: storage operation failed: insert task (caused by: UNIQUE constraint failed)",
		},
		{
			name:     "Timeout error carries the cause",
			err:      NewTimeoutError("list tasks", context.DeadlineExceeded),
			expected: "Error: storage: storage operation failed: list tasks (caused by: context deadline exceeded)",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "Error: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewValidationError("x", nil)) != CodeValidation {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Storage error", NewStorageError("query", errors.New("locked")), true},
		{"Timeout error", NewTimeoutError("query", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
