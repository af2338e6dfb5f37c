package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	// The same merged config backs both binaries, and each binary needs a
	// different subset, so cross-field rules live in the per-binary views.
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ResubscribeInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
