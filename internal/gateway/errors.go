package gateway

import (
	"net/http"

	"storefront-backend/internal/models"
)

// Error is a failure the gateway reports to the caller with a specific status.
// Any other error returned by a handler is treated as an unhandled fault.
type Error struct {
	Status int
	Body   models.ErrorResponse
}

func (e *Error) Error() string {
	return e.Body.Error
}

// WithSuccessFlag marks the body with success=false.
func (e *Error) WithSuccessFlag() *Error {
	f := false
	e.Body.Success = &f
	return e
}

func newError(status int, message string) *Error {
	return &Error{Status: status, Body: models.ErrorResponse{Error: message}}
}

func BadRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

func MethodNotAllowed() *Error {
	return newError(http.StatusMethodNotAllowed, "Method not allowed")
}

// NotConfigured reports a missing secret. It is a 500 so clients never mistake
// a misconfigured deployment for a rejected request.
func NotConfigured(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

func Internal(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

// Upstream relays a failed call to an external API.
func Upstream(status int, message, details string) *Error {
	e := newError(status, message)
	e.Body.Details = details
	return e
}
