package library

import "errors"

var (
	// ErrMissingFields is returned when title or author is empty.
	ErrMissingFields = errors.New("title and author are required")

	// ErrCancelled is returned when the user dismisses an edit prompt.
	ErrCancelled = errors.New("edit cancelled")
)

// Alert messages shown through View.Alert on input failures.
const (
	alertAddMissingFields  = "Please fill out both fields."
	alertEditMissingFields = "Please provide both title and author."
)
