package catalog

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps every failure to reach the catalog service.
var ErrUnavailable = errors.New("catalog service unavailable")

// StatusError is returned when the service answers with a non-success status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap lets callers match any StatusError against ErrUnavailable.
func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}
