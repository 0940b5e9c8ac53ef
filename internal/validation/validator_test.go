package validation

import (
	"strings"
	"testing"

	"todo-app/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name     string
		input    string
		min, max int
		expected bool
	}{
		{"Within range", "hello", 1, 10, true},
		{"At max", strings.Repeat("a", 80), 1, 80, true},
		{"Over max", strings.Repeat("a", 81), 1, 80, false},
		{"Multibyte counted as characters", strings.Repeat("é", 80), 1, 80, true},
		{"Combining accents counted once", strings.Repeat("e\u0301", 80), 1, 80, true},
		{"Surrounding spaces ignored", "  ab  ", 1, 2, true},
		{"Empty below min", "", 1, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator(nil)

	if validator.IsValidTaskID(0) || validator.IsValidTaskID(-3) {
		t.Errorf("non-positive ids should be invalid")
	}
	if !validator.IsValidTaskID(1) {
		t.Errorf("positive ids should be valid")
	}
}

func TestValidator_NormalizeText(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trims whitespace", "  Buy milk \n", "Buy milk"},
		{"Keeps inner whitespace", "Buy  milk", "Buy  milk"},
		{"Keeps decomposed accents", " Cafe\u0301 ", "Cafe\u0301"},
		{"Keeps precomposed accents", "Caf\u00e9", "Caf\u00e9"},
		{"Empty stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.NormalizeText(tt.input); got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCharacterCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"Caf\u00e9", 4},
		{"Cafe\u0301", 4},
	}

	for _, tt := range tests {
		if got := CharacterCount(tt.input); got != tt.expected {
			t.Errorf("CharacterCount(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestValidator_TaskMaxLength(t *testing.T) {
	if got := NewValidator(nil).TaskMaxLength(); got != DefaultTaskMaxLength {
		t.Errorf("default TaskMaxLength = %d, want %d", got, DefaultTaskMaxLength)
	}

	cfg := config.NewConfig()
	cfg.Validation.TaskMaxLength = 20
	if got := NewValidator(cfg).TaskMaxLength(); got != 20 {
		t.Errorf("configured TaskMaxLength = %d, want 20", got)
	}

	cfg.Validation.TaskMaxLength = 0
	if got := NewValidator(cfg).TaskMaxLength(); got != DefaultTaskMaxLength {
		t.Errorf("zero TaskMaxLength should fall back to default, got %d", got)
	}
}
