package config

// validate checks that the loaded [StructuredConfig] satisfies the
// invariants the service relies on at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel
// validation errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.BcryptCost <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
