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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Range expression errors
	ErrRangeParse  ErrorCode = "RANGE_PARSE"
	ErrUnitUnknown ErrorCode = "UNIT_UNKNOWN"
	ErrRangeBounds ErrorCode = "RANGE_BOUNDS"

	// Entry evaluation errors
	ErrMetadata  ErrorCode = "METADATA"
	ErrClockSkew ErrorCode = "CLOCK_SKEW"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Location errors
	ErrLocationAccess ErrorCode = "LOCATION_ACCESS"
)

// OrganizeError represents a structured error with code and details
type OrganizeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OrganizeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OrganizeError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an OrganizeError carrying the same code
func (e *OrganizeError) Is(target error) bool {
	var targetErr *OrganizeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OrganizeError with the given code and message
func New(code ErrorCode, message string) *OrganizeError {
	return &OrganizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OrganizeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OrganizeError {
	return &OrganizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OrganizeError
func Wrap(err error, code ErrorCode, message string) *OrganizeError {
	if err == nil {
		return nil
	}
	return &OrganizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OrganizeError {
	if err == nil {
		return nil
	}
	return &OrganizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OrganizeError) WithDetail(key string, value interface{}) *OrganizeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error, or any error it wraps, has a specific code
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var orgErr *OrganizeError
		if !errors.As(err, &orgErr) {
			return false
		}
		if orgErr.Code == code {
			return true
		}
		err = orgErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not an OrganizeError
func GetErrorCode(err error) ErrorCode {
	var orgErr *OrganizeError
	if errors.As(err, &orgErr) {
		return orgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OrganizeError
func GetErrorDetails(err error) map[string]interface{} {
	var orgErr *OrganizeError
	if errors.As(err, &orgErr) {
		return orgErr.Details
	}
	return nil
}
