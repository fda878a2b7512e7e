package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Component errors
	ErrComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	ErrComponentInvalid  ErrorCode = "COMPONENT_INVALID"

	// Variant declaration errors (reported by the validator; the
	// resolver itself never raises them)
	ErrSpecEmpty         ErrorCode = "SPEC_EMPTY"
	ErrAxisInvalid       ErrorCode = "AXIS_INVALID"
	ErrDefaultUnknown    ErrorCode = "DEFAULT_UNKNOWN"
	ErrOptionReserved    ErrorCode = "OPTION_RESERVED"
	ErrCompoundInvalid   ErrorCode = "COMPOUND_INVALID"
	ErrCompoundNoClasses ErrorCode = "COMPOUND_NO_CLASSES"

	// Selection errors
	ErrSelectionUnknownAxis ErrorCode = "SELECTION_UNKNOWN_AXIS"
	ErrSelectionBadValue    ErrorCode = "SELECTION_BAD_VALUE"
	ErrSelectionResetFalse  ErrorCode = "SELECTION_RESET_FALSE"

	// Output errors
	ErrReportEncode ErrorCode = "REPORT_ENCODE"
)

// VariaError represents a structured error with code and details
type VariaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VariaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VariaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VariaError) Is(target error) bool {
	var targetErr *VariaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VariaError with the given code and message
func New(code ErrorCode, message string) *VariaError {
	return &VariaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VariaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VariaError {
	return &VariaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VariaError
func Wrap(err error, code ErrorCode, message string) *VariaError {
	if err == nil {
		return nil
	}
	return &VariaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VariaError {
	if err == nil {
		return nil
	}
	return &VariaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VariaError) WithDetail(key string, value interface{}) *VariaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var variaErr *VariaError
	if errors.As(err, &variaErr) {
		return variaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VariaError
func GetErrorCode(err error) ErrorCode {
	var variaErr *VariaError
	if errors.As(err, &variaErr) {
		return variaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VariaError
func GetErrorDetails(err error) map[string]interface{} {
	var variaErr *VariaError
	if errors.As(err, &variaErr) {
		return variaErr.Details
	}
	return nil
}
