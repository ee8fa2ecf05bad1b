package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateRequiredString checks that a field is non-blank and within maxLen.
func ValidateRequiredString(field, value string, maxLen int) *FieldValidationError {
	if strings.TrimSpace(value) == "" {
		return &FieldValidationError{Field: field, Message: field + " is required"}
	}
	return ValidateOptionalString(field, value, maxLen)
}

// ValidateOptionalString checks that a field is within maxLen.
func ValidateOptionalString(field, value string, maxLen int) *FieldValidationError {
	if len(value) > maxLen {
		return &FieldValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, maxLen),
		}
	}
	return nil
}

// ValidateHexColor checks a #rrggbb color code. Empty is allowed; the model
// falls back to the default color.
func ValidateHexColor(field, value string) *FieldValidationError {
	if value == "" {
		return nil
	}
	if !hexColorRegex.MatchString(value) {
		return &FieldValidationError{Field: field, Message: field + " must be a hex color code like #007bff"}
	}
	return nil
}

// ValidateIntRange checks that a value lies within [min, max].
func ValidateIntRange(field string, value, min, max int) *FieldValidationError {
	if value < min || value > max {
		return &FieldValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		}
	}
	return nil
}
