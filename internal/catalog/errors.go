package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery rejects a free-text search whose query is blank after
	// trimming.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrNoCriteria rejects an advanced search with no field and no date
	// bound.
	ErrNoCriteria = errors.New("at least one search criterion is required")

	// ErrInvalidID rejects a non-positive artwork id before any request is
	// made.
	ErrInvalidID = errors.New("invalid artwork id")

	// ErrInvalidResponse marks a response body that failed schema validation.
	ErrInvalidResponse = errors.New("invalid data received from the catalog")
)

// TransportError is returned when the catalog answers with a non-success
// status. The request is not retried.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog request failed with status %d", e.Status)
}
