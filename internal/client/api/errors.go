package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: no response was
	// received from the server at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is wrapped into Errors with HTTP status 401/403.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a well-formed error response from the backend: the request made
// it to the server, which reported a business failure. Message carries the
// server-supplied text, if any.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *Error) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return nil
}

// ServerMessage extracts the server-supplied message from err, if err is a
// well-formed API error carrying one. Returns "" otherwise, so callers can
// fall back to their own default text.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
