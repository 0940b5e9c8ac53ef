package validation

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"todo-app/internal/config"
)

// DefaultTaskMaxLength is the width of the task column
const DefaultTaskMaxLength = 80

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance. A nil cfg uses the defaults.
func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the number of characters (not bytes) of the
// trimmed string is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := CharacterCount(strings.TrimSpace(s))
	return length >= min && length <= max
}

// CharacterCount counts s in composed characters, so a letter followed by a
// combining accent counts once. s itself is not modified.
func CharacterCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// NormalizeText trims surrounding whitespace. The remaining bytes are kept
// as submitted.
func (v *Validator) NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// TaskMaxLength returns configured maximum task length or default
func (v *Validator) TaskMaxLength() int {
	if v.config != nil && v.config.Validation.TaskMaxLength > 0 {
		return v.config.Validation.TaskMaxLength
	}
	return DefaultTaskMaxLength
}
