package errors

import (
	"net/http"
	"strings"
)

// FieldError is a single field-level validation failure. Path is the JSON
// path of the offending field; cross-field rules attach a synthetic path.
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// ValidationError carries the ordered list of field errors produced by
// validating one request. It implements AppError so the central error
// handler can render it, but the handler serializes Fields directly rather
// than the usual error envelope.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a ValidationError from an ordered field-error list.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Path+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message.
func (e *ValidationError) Message() string {
	return "input validation failed"
}

// Details returns detailed error information.
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns the ordered field errors.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
