package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxRetriesExceeded: every attempt failed with a retryable error.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrAuthExpired: the server rejected the token as expired. Terminal;
	// the stored token has already been cleared and OnAuthExpired fired.
	ErrAuthExpired = errors.New("authentication expired")
)

// APIError is a non-2xx response that is not a token expiry. 4xx are
// terminal; 5xx are retried and only surface once the budget runs out.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Retryable reports whether the error class is eligible for another
// attempt. Only server-side failures qualify; client errors never do.
func (e *APIError) Retryable() bool {
	return e.Status >= 500
}
