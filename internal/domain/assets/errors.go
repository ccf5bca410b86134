package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: a well-formed reference that matches no stored record.
	ErrNotFound = errors.New("asset not found")

	// ErrPayloadMissing: the record exists but carries no binary payload.
	// Callers must keep this distinguishable from ErrNotFound. The fix for
	// one is re-uploading, for the other it's a bad reference.
	ErrPayloadMissing = errors.New("asset payload missing")

	// ErrInvalidReference: neither a UUID nor a numeric id.
	ErrInvalidReference = errors.New("invalid asset reference")
)

// ValidationError rejects an upload before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
