// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// KeePassHTTP client. It aggregates all sub-configurations and is populated
// by merging values from defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings of the command-line client.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local association store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the KeePassHTTP endpoint and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the command and its operands).
	Args []string
}

// App holds settings that only affect how results are presented.
type App struct {
	// ShowPasswords prints passwords in clear text instead of masking them.
	// Env: APP_SHOW_PASSWORDS
	ShowPasswords bool `env:"SHOW_PASSWORDS"`

	// CopyPassword copies the password of the first returned entry to the
	// system clipboard.
	// Env: APP_COPY_PASSWORD
	CopyPassword bool `env:"COPY_PASSWORD"`
}

// Storage groups the configuration for the association store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite association store.
type DB struct {
	// DSN is the path of the SQLite database file that keeps the
	// association key and identifier (e.g. "/home/user/.config/kph/kph.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the outbound KeePassHTTP transport.
type Adapter struct {
	// HTTPAddress is the KeePassHTTP endpoint, either a full URL or
	// "host:port" (e.g. "http://localhost:19455").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request round trip (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Returns a fully populated *StructuredConfig or an error
// if any source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
