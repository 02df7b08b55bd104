// Package errors defines the error surface the API client exposes to callers.
// Server failures keep their original status code and response body so the
// caller can render field-level validation payloads.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"plastpack/internal/errors"
)

// APIError is returned for any non-2xx response from the catalog service.
type APIError struct {
	StatusCode int    // HTTP status code as received
	Method     string // request method
	Path       string // request path relative to the base URL
	Body       []byte // raw response body, preserved verbatim
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: server returned %d", e.Method, e.Path, e.StatusCode)
}

// Detail extracts the human-readable message the backend puts under
// "detail" or "error", falling back to the raw body.
func (e *APIError) Detail() string {
	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Err != "" {
			return payload.Err
		}
	}

	return string(e.Body)
}

// FieldErrors returns the per-field validation payload of a 400 response
// ({"error": ..., "details": {field: [messages]}}), or nil.
func (e *APIError) FieldErrors() map[string][]string {
	var payload struct {
		Details map[string][]string `json:"details"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return nil
	}

	return payload.Details
}

// FromResponse builds an APIError for a failed request.
func FromResponse(method, path string, statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}
}

// IsAuthFailure reports whether err is a 401 or 403 from the server.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusNotFound
}

// IsValidationFailure reports whether err is a 400 from the server.
func IsValidationFailure(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusBadRequest
}

// Sentinel errors raised locally, before any request is sent.
var (
	// ErrNoToken is reported by session status checks when no credential
	// is stored or the stored one no longer validates.
	ErrNoToken = errors.New("no valid admin token stored")

	// ErrNoTokenInResponse means the login endpoint answered 2xx but none
	// of the known response fields carried a token.
	ErrNoTokenInResponse = errors.New("login response carried no recognizable token field")
)
