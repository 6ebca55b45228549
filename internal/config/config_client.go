package config

import "time"

// ClientAdapter holds the outbound transport settings of the CLI client.
type ClientAdapter struct {
	// HTTPAddress is the relay base URL.
	HTTPAddress string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
}

// ClientStorage holds the local cache settings of the CLI client.
type ClientStorage struct {
	// CachePath is the sqlite file keeping the last-known-good vault blob.
	CachePath string
}

// ClientSaver holds the debounced-save settings.
type ClientSaver struct {
	// Debounce is the quiet period after the last mutation before the
	// vault is re-encrypted and uploaded.
	Debounce time.Duration
}

// ClientConfig is the client-side view over the merged configuration.
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Saver    ClientSaver
	Security Security
}

// GetClientConfig builds the merged configuration and maps the fields the
// client runtime needs. The client does not require a token sign key, so
// only transport settings are validated.
func GetClientConfig() (*ClientConfig, error) {
	base := newConfigBuilder().withEnv().withFlags().withJSON()
	if base.err != nil {
		return nil, base.err
	}

	merged := new(StructuredConfig)
	for _, cfg := range base.configs {
		if err := mergeInto(merged, cfg); err != nil {
			return nil, err
		}
	}
	merged.applyDefaults()

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    merged.Adapter.HTTPAddress,
			RequestTimeout: merged.Adapter.RequestTimeout,
		},
		Storage:  ClientStorage{CachePath: merged.Storage.CachePath},
		Saver:    ClientSaver{Debounce: merged.Saver.Debounce},
		Security: merged.Security,
	}, nil
}
