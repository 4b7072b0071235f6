package domain

import "errors"

// Sentinel errors for the four failure classes the API surfaces.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrNotFound indicates an operation targeted an id absent from its
	// collection. Never fatal; always a 404.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a malformed id or request body. Surfaced
	// before any store access is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates an admin password mismatch.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorage indicates the backing document could not be read or
	// written. Reads degrade instead of surfacing this; writes surface it
	// as a 500 and the mutation is considered not applied.
	ErrStorage = errors.New("storage unavailable")
)
