package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingToken is returned by callers when a login succeeded at the
	// HTTP level but carried no access token.
	ErrMissingToken = errors.New("login response carries no access token")
	// ErrEmptyResponse marks a 2xx response without the expected record.
	ErrEmptyResponse = errors.New("empty response")
)

// StatusError describes a non-2xx response. 401 and 403 unwrap to
// ErrUnauthorized.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
