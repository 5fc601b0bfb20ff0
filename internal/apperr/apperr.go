// Package apperr defines the error taxonomy shared by services and handlers.
// Every failure is terminal for its request; no retries happen anywhere.
package apperr

import "errors"

// ErrMissingDateRange rejects aggregation requests without both date bounds.
var ErrMissingDateRange = errors.New("missing date parameter")

// ValidationError reports a missing or malformed request field. Surfaced to
// the caller verbatim with a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError reports an operation targeting a record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// StoreError wraps a storage failure. Message is what goes on the wire;
// the wrapped cause is logged only.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Store builds a StoreError around a failed store call.
func Store(message string, err error) error {
	return &StoreError{Message: message, Err: err}
}
