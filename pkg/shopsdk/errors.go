package shopsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// ErrNoSession is returned by operations that need a stored access token
// when none is present.
var ErrNoSession = errors.New("shopsdk: no access token stored")

// errNoRefreshToken aborts the refresh flow before any network call when
// the session has nothing to refresh with.
var errNoRefreshToken = errors.New("shopsdk: no refresh token stored")

// ============================================================================
// Error Types
// ============================================================================

// APIError represents a non-2xx response from the backend that is neither a
// credential failure nor a field validation failure (e.g. 404, 5xx).
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Detail is the human-readable message from the response body, or a
	// generic description derived from the status code
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Detail)
}

// AuthError represents a rejected credential: a failed login, a rejected
// or expired token, or an exhausted refresh. Recovering requires the user
// to log in again.
type AuthError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (HTTP %d): %s", e.StatusCode, e.Detail)
}

// ValidationError represents per-field input rejection, either reported by
// the backend (registration field errors) or raised locally before any
// network call. Fields maps each offending field to its first message.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}

	// Stable order so error strings are deterministic.
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	first := names[0]
	return fmt.Sprintf("validation error: %s: %s", first, e.Fields[first])
}

// ============================================================================
// Error Parsing
// ============================================================================

// parseErrorResponse maps a non-2xx response body into a typed error. The
// backend follows the DRF convention: `{"detail": "..."}` for general
// failures and `{"field": ["msg", ...]}` for validation failures.
func parseErrorResponse(statusCode int, body []byte) error {
	// General failure with a detail message
	var detailResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detailResp); err == nil && detailResp.Detail != "" {
		if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
			return &AuthError{StatusCode: statusCode, Detail: detailResp.Detail}
		}
		return &APIError{StatusCode: statusCode, Detail: detailResp.Detail}
	}

	// Per-field validation errors
	if statusCode == http.StatusBadRequest {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err == nil && len(raw) > 0 {
			fields := make(map[string]string, len(raw))
			for name, msg := range raw {
				var msgs []string
				if err := json.Unmarshal(msg, &msgs); err == nil && len(msgs) > 0 {
					fields[name] = msgs[0]
					continue
				}
				var single string
				if err := json.Unmarshal(msg, &single); err == nil && single != "" {
					fields[name] = single
				}
			}
			if len(fields) > 0 {
				return &ValidationError{Fields: fields}
			}
		}
	}

	// Bare 401/403 without a parseable body is still a credential failure.
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &AuthError{StatusCode: statusCode, Detail: http.StatusText(statusCode)}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode: statusCode,
		Detail:     fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
