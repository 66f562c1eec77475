package errors

import (
	"math"
	"strings"
	"unicode"
)

const (
	maxNameLength   = 128
	maxPromptLength = 4096
)

// ValidateRoomName validates a room name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty or blank names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateRoomName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "room name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "room name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "room name contains invalid control characters")
		}
	}
	return nil
}

// ValidateLevel validates a floor level label.
func ValidateLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return New(ErrCodeInvalidInput, "floor level cannot be empty")
	}
	if len(level) > maxNameLength {
		return New(ErrCodeInvalidInput, "floor level too long (max %d characters)", maxNameLength)
	}
	return nil
}

// ValidatePrompt bounds the size of a free-text placement hint.
func ValidatePrompt(prompt string) error {
	if len(prompt) > maxPromptLength {
		return New(ErrCodeInvalidInput, "prompt too long (max %d characters)", maxPromptLength)
	}
	return nil
}

// ValidatePositive rejects zero, negative, NaN, and infinite measurements.
// what names the quantity in the error message (e.g. "area of room \"Kitchen\"").
func ValidatePositive(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", what, v)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values. Unlike [ValidatePositive],
// zero and negative values pass.
func ValidateFinite(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", what, v)
	}
	return nil
}
