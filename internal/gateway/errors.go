package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for the two conditions every operation checks before and
// after talking to the Gateway.
var (
	// ErrNotAuthenticated means no access token is stored. The operation
	// aborts before any request is issued.
	ErrNotAuthenticated = errors.New("you are not logged in")

	// ErrUnauthorized means the Gateway rejected the stored token (401/403).
	// Callers clear the stored credential and send the user back to login.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries the Gateway's structured per-field errors.
type ValidationError struct {
	Fields map[string][]string
}

// Error renders each field error verbatim as "field: message" pairs,
// matching what the dashboard shows next to inputs.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return strings.Join(parts, "\n")
}

// RequestError wraps a network or decode failure. The user sees a generic
// connectivity message; the underlying error goes to the log.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "failed to connect to server"
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is a non-success Gateway response carrying a message but no
// field breakdown. The message is surfaced as-is.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// IsMethodNotAllowed reports whether err is a 405 from the Gateway. The
// remove-return fallback chain keys its continuation off this predicate.
func IsMethodNotAllowed(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusMethodNotAllowed
}
