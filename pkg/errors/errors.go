// Package errors provides structured error types for notifstack.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the runner and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - CONTRACT_VIOLATION: A caller broke a calculator precondition
//   - INTERNAL_*: Unexpected internal errors
//
// # Contract Violations
//
// The calculator never clamps malformed input. A negative height, a negative
// budget or a count past the end of the stack is a host-side bug, so the
// calculator panics with an [*Error] carrying [ErrCodeContractViolation].
// Code that accepts untrusted input (scenario files, HTTP bodies) validates
// first with the Validate* helpers and only then calls the calculator.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidBudget, "budget must be >= 0, got %v", b)
//	if errors.Is(err, errors.ErrCodeInvalidBudget) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScenario, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidScenario  Code = "INVALID_SCENARIO"
	ErrCodeInvalidBudget    Code = "INVALID_BUDGET"
	ErrCodeInvalidRow       Code = "INVALID_ROW"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidLockState Code = "INVALID_LOCK_STATE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeRouteNotFound Code = "ROUTE_NOT_FOUND"

	// Precondition failures inside the calculator
	ErrCodeContractViolation Code = "CONTRACT_VIOLATION"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Violation panics with a CONTRACT_VIOLATION error.
func Violation(format string, args ...any) {
	panic(New(ErrCodeContractViolation, format, args...))
}

// FromPanic converts a recovered panic value into an error.
// Contract violations keep their code; anything else becomes INTERNAL_ERROR.
func FromPanic(v any) error {
	switch p := v.(type) {
	case nil:
		return nil
	case *Error:
		return p
	case error:
		return Wrap(ErrCodeInternal, p, "unexpected panic")
	default:
		return New(ErrCodeInternal, "unexpected panic: %v", p)
	}
}
