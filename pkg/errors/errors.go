// Package errors provides structured error types for the floorplan application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI, and API
//   - Machine-readable error codes for programmatic handling
//   - Recoverable diagnostics that travel with a layout result
//
// # Error Codes
//
// Fatal codes stop a layout call before placement starts:
//   - INVALID_INPUT: empty floors, non-positive areas, non-positive plot
//
// Recoverable codes are reported as [Diagnostic] warnings next to a best-effort
// layout:
//   - CAPACITY_EXCEEDED, OVERLAP_DETECTED, MISSING_STANDARD, ...
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "room %q has non-positive area", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render floor %s", level)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Fatal error codes.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Recoverable diagnostic codes. These never abort a layout call.
const (
	ErrCodeCapacityExceeded     Code = "CAPACITY_EXCEEDED"
	ErrCodeOverlapDetected      Code = "OVERLAP_DETECTED"
	ErrCodeMissingStandard      Code = "MISSING_STANDARD"
	ErrCodeAdjacencyUnsatisfied Code = "ADJACENCY_UNSATISFIED"
	ErrCodeUnknownRoom          Code = "UNKNOWN_ROOM"
	ErrCodePlotDerived          Code = "PLOT_DERIVED"
	ErrCodeCirculationOverlap   Code = "CIRCULATION_OVERLAP"
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

// UserMessage returns the message a person should see: the text of an
// *Error without its code prefix, or err.Error() for anything else.
// A nil error yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
