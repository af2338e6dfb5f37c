package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFilePath is where the client writes its log output.
	LogFilePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the geonotes server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite database file path used for the local cache.
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ResubscribeInterval is how long the snapshot pump waits before
	// re-establishing a dropped live subscription.
	ResubscribeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults for optional values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	base, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading base config for client: %w", err)
	}

	cfg := &ClientConfig{
		App: ClientApp{
			LogFilePath: base.App.LogFilePath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    base.Adapter.HTTPAddress,
			RequestTimeout: base.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: base.Storage.DB.DSN,
		},
		Workers: ClientWorkers{
			ResubscribeInterval: base.Workers.ResubscribeInterval,
		},
	}

	if cfg.App.LogFilePath == "" {
		cfg.App.LogFilePath = "geonotes-client.log"
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "geonotes-cache.db"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.ResubscribeInterval == 0 {
		cfg.Workers.ResubscribeInterval = 5 * time.Second
	}

	return cfg, cfg.validate()
}
