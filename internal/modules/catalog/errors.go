package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by GetByID when no row matches the id.
	ErrNotFound = errors.New("product not found")

	// ErrReadUnavailable means both the store and the spreadsheet
	// fallback failed; the read request cannot be served at all.
	ErrReadUnavailable = errors.New("catalog unavailable from store and source")
)

// WriteError reports a failed store write together with how much of
// the batch had already been committed when the failure happened.
// Chunks before ChunksCommitted are durably applied; the rest of the
// batch was not attempted.
type WriteError struct {
	ChunksCommitted int
	Err             error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write failed after %d committed chunks: %v", e.ChunksCommitted, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
