// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// serverDefaults are applied by validate for fields the server cannot run
// without and the operator did not set.
const (
	defaultHTTPAddress     = "localhost:5000"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "go-folio"
	defaultTokenDuration   = 24 * time.Hour
	defaultSessionFile     = "folio-session.db"
	defaultRefreshInterval = time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	return nil
}

// applyDefaults fills optional admin client settings with their fallbacks.
// The base URL failover to the local development backend is deliberate: the
// client must start with zero configuration.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultAPIBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.SessionPath == "" {
		cfg.Storage.SessionPath = defaultSessionFile
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
