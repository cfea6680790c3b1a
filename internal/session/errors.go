package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
)

// errorMessage maps a failed catalog call to the single human-readable
// message shown in place of results.
func errorMessage(err error) string {
	var transport *catalog.TransportError
	switch {
	case errors.As(err, &transport):
		return fmt.Sprintf("The catalog returned status %d", transport.Status)
	case errors.Is(err, catalog.ErrInvalidResponse):
		return "The catalog returned data in an unexpected format"
	case errors.Is(err, context.DeadlineExceeded):
		return "The catalog did not answer in time"
	case errors.Is(err, context.Canceled):
		return "The search was cancelled"
	default:
		return fmt.Sprintf("The search failed: %v", err)
	}
}
