package apierrors

import (
	"context"
	"errors"
)

// Code represents a request failure category independent of transport details.
// These codes describe what went wrong from the caller's point of view, not
// in HTTP terms.
type Code string

const (
	CodeCanceled      Code = "canceled"       // caller cancelled the request; never surfaced as an error by services
	CodeAccessDenied  Code = "access_denied"  // server rejected the bearer token; triggers forced logout
	CodeRequestFailed Code = "request_failed" // network failure or non-2xx response
	CodeUnauthorized  Code = "unauthorized"
	CodeNotFound      Code = "not_found"
	CodeBadRequest    Code = "bad_request"
	CodeInternal      Code = "internal_error"
)

// Error wraps transport or server failures with a stable code. The Message
// carries the server-provided human-readable text when one was available.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new coded error wrapping an existing error.
// If the wrapped error already carries a code, that code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsCanceled reports whether the error represents caller-driven cancellation.
// Cancellation is detected by type, never by comparing message strings.
func IsCanceled(err error) bool {
	if err == nil {
		return false
	}
	if HasCode(err, CodeCanceled) {
		return true
	}
	return errors.Is(err, context.Canceled)
}

// Message extracts the server-provided message from an error, falling back
// to the given default when the error carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
