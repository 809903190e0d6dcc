package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the admin client transport
// layer.
type ClientAdapter struct {
	// BaseURL is the REST backend base URL, including the /api prefix.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups admin client storage backend settings.
type ClientStorage struct {
	// SessionPath is the SQLite file path of the persisted session.
	SessionPath string
}

// ClientWorkers contains admin client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the dashboard refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level admin client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates an admin-client-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies client defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Client.APIBaseURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionPath: cfg.Storage.Session.Path,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}
