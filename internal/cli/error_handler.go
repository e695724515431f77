package cli

import (
	stderrors "errors"
	"fmt"

	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/validation"
)

// ErrorHandler turns errors that end a session into user-facing messages
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	eh.log(operation, err)

	var fieldErr *validation.FieldError
	if stderrors.As(err, &fieldErr) {
		return fmt.Errorf("failed to %s: %s", operation, fieldErr.Error())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsStorageError checks if an error comes from loading or saving the list
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage) || errors.IsErrorType(err, errors.ErrorTypeDecode)
}

func (eh *ErrorHandler) log(operation string, err error) {
	if !errors.ShouldLogError(err) {
		return
	}
	logger := logging.Default().With("operation", operation, "code", errors.GetErrorCode(err))
	if appErr, ok := errors.AsAppError(err); ok {
		for k, v := range appErr.Context {
			logger = logger.With(k, v)
		}
	}
	logger.Error(err.Error())
}
