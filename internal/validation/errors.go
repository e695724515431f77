package validation

import (
	"fmt"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// FieldError describes why one piece of user input was rejected
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// IsFieldError checks if an error is a FieldError
func IsFieldError(err error) bool {
	_, ok := err.(*FieldError)
	return ok
}

func invalidFormat(field string, value interface{}, expectedFormat string) *FieldError {
	return &FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidFormat,
		Message: fmt.Sprintf("%s has invalid format, expected: %s", field, expectedFormat),
		Value:   value,
	}
}

func invalidValue(field string, value interface{}, reason string) *FieldError {
	return &FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("%s has invalid value: %s", field, reason),
		Value:   value,
	}
}

func invalidRange(field string, value interface{}, reason string) *FieldError {
	return &FieldError{
		Field:   field,
		Type:    ErrorTypeInvalidRange,
		Message: fmt.Sprintf("%s has invalid range: %s", field, reason),
		Value:   value,
	}
}
