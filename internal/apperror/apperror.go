// Package apperror defines the error taxonomy shared by every request
// pipeline stage, with a fixed mapping from error kind to HTTP status.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for status mapping at the response boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindStoreValidation // document-level constraint violated on write
)

// Error is the single error type crossing component boundaries. Handlers
// never inspect it directly; the response shaper maps it to an envelope.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Fields  map[string][]string // field-level breakdown for validation errors
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindStoreValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error carrying a per-field breakdown.
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error", Fields: fields}
}

// StoreValidation builds a 400 error for a constraint caught at write time.
func StoreValidation(fields map[string][]string) *Error {
	return &Error{Kind: KindStoreValidation, Message: "Database validation error", Fields: fields}
}

// Unauthorized builds a 401 error with the given message.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound builds a 404 error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409 error with the given message and optional details.
func Conflict(message string, details any) *Error {
	return &Error{Kind: KindConflict, Message: message, Details: details}
}

// Internal wraps an unexpected failure. The wrapped error is logged
// server-side; the caller only ever sees the generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// From returns err as *Error, wrapping unknown errors as internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
