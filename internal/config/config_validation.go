// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "vaultshare"
	defaultTokenDuration  = 12 * time.Hour
	defaultRequestTimeout = 15 * time.Second
	defaultSaveDebounce   = time.Second
	defaultCachePath      = "vaultshare-cache.db"
)

// applyDefaults fills in every optional setting that no source provided.
// Secrets (sign key, hash key) deliberately have no defaults.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
	if c.Adapter.HTTPAddress == "" {
		c.Adapter.HTTPAddress = "http://" + defaultHTTPAddress
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.Saver.Debounce <= 0 {
		c.Saver.Debounce = defaultSaveDebounce
	}
	if c.Storage.CachePath == "" {
		c.Storage.CachePath = defaultCachePath
	}
}

func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	return nil
}
