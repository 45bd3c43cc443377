package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is a user-facing error carrying the HTTP status and an error code.
// Message is safe to show to end users; causes are never embedded.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError whose Code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{Code: statusCode, Message: message, StatusCode: statusCode}
}

// NewHTTPErrorWithCode creates an HTTPError with a domain specific code.
func NewHTTPErrorWithCode(statusCode, code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: statusCode}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "something went wrong, please try again")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests, slow down")
)
