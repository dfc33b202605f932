package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = "http://localhost:19455"
	defaultRequestTimeout = 30 * time.Second
	defaultDBFileName     = "kph.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN()}},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// defaultDSN places the database in the user's config directory, falling
// back to the working directory when none is available.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultDBFileName
	}
	return filepath.Join(dir, "kph", defaultDBFileName)
}
