package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no association is stored for the
	// requested endpoint.
	ErrSessionNotFound = errors.New("session not found")

	// ErrIncompleteSession is returned when a caller tries to save a
	// session config with an empty key or id. Associations are stored
	// whole or not at all.
	ErrIncompleteSession = errors.New("incomplete session config")
)
