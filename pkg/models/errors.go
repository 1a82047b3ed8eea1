package models

import "errors"

// Error kinds surfaced by a file list run. Concrete errors wrap one of these,
// so callers can test the kind with errors.Is.
var (
	// ErrConfiguration covers an invalid base directory, an unsupported output
	// type or an output directory that cannot be created.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO covers traversal, attribute read and output write failures.
	ErrIO = errors.New("i/o error")
)
