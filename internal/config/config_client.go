package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation settings of the client.
type ClientApp struct {
	// ShowPasswords prints passwords in clear text.
	ShowPasswords bool
	// CopyPassword copies the first entry's password to the clipboard.
	CopyPassword bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the KeePassHTTP endpoint.
	HTTPAddress string
	// RequestTimeout is the timeout of a single request round trip.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains presentation settings.
	App ClientApp
	// Adapter contains the KeePassHTTP endpoint and timeout.
	Adapter ClientAdapter
	// Storage contains association store settings.
	Storage ClientStorage
	// Args holds the command and its operands.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ShowPasswords: cfg.App.ShowPasswords,
			CopyPassword:  cfg.App.CopyPassword,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Args: cfg.Args,
	}
}
