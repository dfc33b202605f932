package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an empty address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an in-memory DSN that cannot persist
	// an association).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// ErrInvalidServerConfigs indicates that the fake service has no listen
// address.
var ErrInvalidServerConfigs = errors.New("invalid server configuration")
