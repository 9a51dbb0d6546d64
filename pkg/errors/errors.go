// Package errors provides coded errors so callers and tests can tell failure
// kinds apart without matching on message text.
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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Source loading errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFetchFailed  ErrorCode = "FETCH_FAILED"

	// Representation errors
	ErrSVGParse     ErrorCode = "SVG_PARSE"
	ErrFormatFailed ErrorCode = "FORMAT_FAILED"

	// Front-end errors
	ErrPublishFailed ErrorCode = "PUBLISH_FAILED"
)

// DisplayError represents a structured error with code and details
type DisplayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DisplayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DisplayError) Unwrap() error {
	return e.Wrapped
}

// Is matches another DisplayError carrying the same code
func (e *DisplayError) Is(target error) bool {
	var targetErr *DisplayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DisplayError with the given code and message
func New(code ErrorCode, message string) *DisplayError {
	return &DisplayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DisplayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DisplayError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DisplayError. Callers must not pass a
// nil error: the result would be a typed nil.
func Wrap(err error, code ErrorCode, message string) *DisplayError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DisplayError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DisplayError) WithDetail(key string, value interface{}) *DisplayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var displayErr *DisplayError
	if errors.As(err, &displayErr) {
		return displayErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DisplayError
func GetErrorCode(err error) ErrorCode {
	var displayErr *DisplayError
	if errors.As(err, &displayErr) {
		return displayErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DisplayError
func GetErrorDetails(err error) map[string]interface{} {
	var displayErr *DisplayError
	if errors.As(err, &displayErr) {
		return displayErr.Details
	}
	return nil
}
