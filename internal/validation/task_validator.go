package validation

import (
	"todo-app/internal/config"
)

// FieldTask is the form field and column carrying the task text
const FieldTask = "task"

// MessageTaskEmpty is returned to clients when the task text is blank
const MessageTaskEmpty = "Task cannot be empty"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator using configured limits. A nil
// cfg uses the defaults.
func NewTaskValidator(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(cfg),
	}
}

// ValidateText validates task text for creation or update
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	normalized := tv.validator.NormalizeText(text)

	if !tv.validator.IsNonEmptyString(normalized) {
		validationError.AddError(FieldTask, ErrorTypeRequired, MessageTaskEmpty, text)
		return validationError
	}

	maxLen := tv.validator.TaskMaxLength()
	if !tv.validator.IsValidStringLength(normalized, 1, maxLen) {
		validationError.AddInvalidLengthError(FieldTask, normalized, 1, maxLen)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidText returns the normalized task text if valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return tv.validator.NormalizeText(text), nil
}
