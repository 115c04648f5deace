package apperr

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the API reports.
// Every service error is one of these so controllers can map errors
// to HTTP status codes deterministically.
type Kind int

const (
	Internal Kind = iota
	NotFound
	ValidationFailed
	PermissionDenied
	Conflict
)

// Error is a categorized API error. Fields carries per-field messages
// for ValidationFailed errors, mirroring the field-error response shape.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case ValidationFailed:
		return http.StatusBadRequest
	case PermissionDenied:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a NotFound error.
func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, format, args...)
}

// Conflictf creates a Conflict error.
func Conflictf(format string, args ...interface{}) *Error {
	return New(Conflict, format, args...)
}

// Forbiddenf creates a PermissionDenied error.
func Forbiddenf(format string, args ...interface{}) *Error {
	return New(PermissionDenied, format, args...)
}

// Validation creates a ValidationFailed error carrying field-level messages.
func Validation(fields map[string][]string) *Error {
	return &Error{
		Kind:    ValidationFailed,
		Message: "validation failed",
		Fields:  fields,
	}
}
