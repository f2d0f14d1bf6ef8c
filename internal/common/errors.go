// Package common defines sentinel errors and small helpers shared by the
// Voyage client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrMalformedRecord = errors.New("malformed record")

	// ErrOperationFailed is the single failure condition surfaced by
	// session operations. The underlying cause is wrapped alongside it.
	ErrOperationFailed = errors.New("operation failed")

	// Input validation errors raised by form-level checks.
	ErrValidation = errors.New("validation error")
)
