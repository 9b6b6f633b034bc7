package github

import "fmt"

// AuthError means the API rejected the token. Not retried; the run aborts.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// APIError is any non-auth failure talking to the API (network-level
// failures are returned as wrapped transport errors instead).
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d on %s %s: %s", e.StatusCode, e.Method, e.Path, e.Body)
}
