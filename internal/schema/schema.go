// Package schema holds the validation machinery used at the two trust
// boundaries of the application: JSON payloads from the remote catalog
// service and the durable gallery blob. Everything else in memory is
// considered well-typed by construction and is not re-validated.
package schema

import "fmt"

// Error describes why an untrusted payload was rejected. Path points at the
// offending field (e.g. "data[3].id"), Message says what was expected.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errorf builds an Error for a field path.
func Errorf(path, format string, args ...any) *Error {
	return &Error{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}
