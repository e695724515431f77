package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Decode", ErrorTypeDecode, "decode"},
		{"Config", ErrorTypeConfig, "config"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "write failed",
				Cause:   errors.New("disk full"),
			},
			expected: "storage: write failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := &AppError{Type: ErrorTypeDecode, Cause: cause}

	if !errors.Is(appErr, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
}

func TestAppError_Is(t *testing.T) {
	a := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	b := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	c := &AppError{Type: ErrorTypeNotFound, Code: "OTHER"}

	if !a.Is(b) {
		t.Errorf("errors with same type and code should match")
	}
	if a.Is(c) {
		t.Errorf("errors with different codes should not match")
	}
	if a.Is(errors.New("plain")) {
		t.Errorf("plain errors should not match")
	}
}

func TestAppError_Context(t *testing.T) {
	appErr := &AppError{Type: ErrorTypeInvalidInput}

	if _, ok := appErr.GetContext("field"); ok {
		t.Errorf("GetContext should report missing keys on a nil context")
	}

	appErr.WithContext("field", "date")
	value, ok := appErr.GetContext("field")
	if !ok || value != "date" {
		t.Errorf("GetContext() = %v, %v, want date, true", value, ok)
	}
}
