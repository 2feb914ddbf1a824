package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`

	cause error
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

// Unauthenticated is the 401 raised when a session token is missing,
// malformed, expired or signed with the wrong key.
func Unauthenticated(message string) *APIError {
	return New("UNAUTHORIZED", message, "", http.StatusUnauthorized)
}

// Forbidden is the 403 raised when an authenticated identity does not
// match the resource's owning party.
func Forbidden(message string) *APIError {
	return New("FORBIDDEN", message, "", http.StatusForbidden)
}

// Internal hides datastore and signing failures behind a generic 500.
// The wrapped cause stays available to errors.Unwrap for logging but is
// never serialized to the client.
func Internal(cause error) *APIError {
	e := New("INTERNAL_ERROR", "Unexpected server error", "", http.StatusInternalServerError)
	e.cause = cause
	return e
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}
