// Package apierr defines the JSON error body used by every handler.
package apierr

import (
	"net/http"

	"github.com/go-chi/render"
)

// Error is a structured API error response.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code"`
	Message    string `json:"error"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *Error) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationDetail names the field a validation error refers to.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates an Error with the given status, code and message.
func New(statusCode int, code, message string) *Error {
	return &Error{StatusCode: statusCode, Code: code, Message: message}
}

// BadRequest creates a 400 error.
func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

// Validation creates a 400 validation error carrying the failing field.
func Validation(field, message string) *Error {
	e := BadRequest("VALIDATION_FAILED", "Request validation failed")
	e.Details = ValidationDetail{Field: field, Message: message}
	return e
}

// Internal creates a 500 error.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
