package config

import (
	"flag"
	"time"
)

// ParseFlags parses configuration flags into a [StructuredConfig].
//
// Flags:
//
//	-a              listen address host:port (relay) / relay base URL (client)
//	-d              database DSN
//	-cache          client sqlite cache path
//	-c/-config      JSON config file path
//	-token-sign-key token signing key
//	-token-issuer   token issuer name
//	-token-duration token validity (e.g. "12h")
//	-request-timeout request timeout (e.g. "15s")
//	-hash-key       transport integrity HMAC key
//	-debounce       vault save debounce window (e.g. "1s")
func ParseFlags() *StructuredConfig {
	var (
		address        string
		databaseDSN    string
		cachePath      string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		debounce       time.Duration
	)

	flag.StringVar(&address, "a", "", "Listen address or relay base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&cachePath, "cache", "", "Client vault cache path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 12h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 15s)")
	flag.StringVar(&hashKey, "hash-key", "", "Transport integrity hash key")
	flag.DurationVar(&debounce, "debounce", 0, "Vault save debounce window")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:        DB{DSN: databaseDSN},
			CachePath: cachePath,
		},
		Server: Server{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Security: Security{HashKey: hashKey},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Saver:        Saver{Debounce: debounce},
		JSONFilePath: jsonConfigPath,
	}
}
