package apierror

import (
	"fmt"
	"net/http"
)

// APIError is an expected, client-facing failure. It is rendered as-is and
// never logged as a server error.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// BadRequest builds a 400 validation error.
func BadRequest(message string, details string) *APIError {
	return New("BAD_REQUEST", message, details, http.StatusBadRequest)
}

// WeakPassword builds the 400 returned when the password policy rejects a password.
func WeakPassword(message string) *APIError {
	return New("WEAK_PASSWORD", message, "password", http.StatusBadRequest)
}
