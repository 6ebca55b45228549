// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

// Package config assembles the application configuration from environment
// variables, command-line flags, and an optional JSON file. The three
// sources are merged with mergo in that order: a value set by an earlier
// source wins over the same value from a later one.
package config

import "time"

// StructuredConfig is the top-level configuration of the relay server.
// Env tags are resolved by caarlos0/env with nested prefixes.
type StructuredConfig struct {
	// Auth holds token signing parameters for the relay's bearer auth.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds persistence settings for the relay database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Security holds transport integrity settings shared by relay and client.
	Security Security `envPrefix:"SECURITY_"`

	// Adapter holds outbound settings used by the client binary.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Saver holds client-side debounced persistence settings.
	Saver Saver `envPrefix:"SAVER_"`

	// Retention holds the relay's share-envelope retention settings.
	Retention Retention `envPrefix:"RETENTION_"`

	// JSONFilePath optionally points to a JSON config file merged on top
	// of env and flags. Env: CONFIG, flag: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds JWT lifecycle settings.
type Auth struct {
	// TokenSignKey signs and verifies bearer tokens. Confidential.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim stamped on every issued token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token validity window (e.g. "12h").
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage holds relay persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// CachePath is the client-side sqlite file holding the last-known-good
	// vault ciphertext. Ignored by the relay binary.
	CachePath string `env:"CACHE_PATH"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	DSN string `env:"DSN" envDefault:""`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds request handling.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds the HMAC key for request body integrity signatures.
type Security struct {
	// HashKey keys the HashSHA256 header check on vault uploads. Distinct
	// from any encryption key; shared between relay and clients.
	HashKey string `env:"HASH_KEY"`
}

// Adapter holds outbound transport settings for the client.
type Adapter struct {
	// HTTPAddress is the relay base URL.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout of the client transport.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Saver holds the debounce window for whole-vault persistence. Mutations
// coalesce into one save after this quiet period.
type Saver struct {
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Retention bounds how long unconsumed share envelopes are kept. Zero
// values fall back to the janitor's built-in defaults.
type Retention struct {
	// EnvelopeTTL is the retention window for pending envelopes.
	EnvelopeTTL time.Duration `env:"ENVELOPE_TTL"`

	// SweepInterval is how often expired envelopes are swept.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig builds the merged configuration the relay uses.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
