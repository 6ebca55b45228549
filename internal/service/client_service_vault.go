// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anorlov/vaultshare/internal/adapter"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/models"
)

type clientVaultService struct {
	adapter adapter.RelayAdapter
	cache   store.VaultCache
	logger  *logger.Logger
}

// NewClientVaultService constructs a ClientVaultService over the relay
// adapter and the local last-known-good cache.
func NewClientVaultService(relayAdapter adapter.RelayAdapter, cache store.VaultCache, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter: relayAdapter,
		cache:   cache,
		logger:  logger,
	}
}

// Load fetches and decrypts the vault snapshot.
//
// Outcomes, in order of checking:
//   - Relay has no vault for this account → a fresh empty vault. First
//     login on a new account is not an error.
//   - Relay unreachable → decrypt the cached last-known-good blob instead.
//     No cache either → the transport error propagates.
//   - Blob present but the session key cannot open it → ErrVaultDecryption.
//     Callers must treat this as fatal for writes: saving now would
//     overwrite data the user may still be able to recover.
func (v *clientVaultService) Load(ctx context.Context, session *Session) (models.VaultData, error) {
	if session == nil {
		return models.VaultData{}, ErrNoSession
	}

	blob, err := v.adapter.GetVault(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.EmptyVault(), nil
		}

		v.logger.Err(err).Str("func", "*clientVaultService.Load").Msg("relay fetch failed, trying local cache")

		cached, cacheErr := v.cache.Get(ctx, session.Email())
		if cacheErr != nil {
			return models.VaultData{}, fmt.Errorf("vault fetch failed and no usable cache: %w", err)
		}
		return v.decrypt(session, cached)
	}

	vault, err := v.decrypt(session, blob)
	if err != nil {
		return models.VaultData{}, err
	}

	// refresh the last-known-good copy
	if cacheErr := v.cache.Put(ctx, session.Email(), blob); cacheErr != nil {
		v.logger.Err(cacheErr).Str("func", "*clientVaultService.Load").Msg("cache refresh failed")
	}

	return vault, nil
}

// Save serializes, encrypts and uploads the snapshot, refreshing the
// local cache with the same ciphertext. Last write wins on the relay.
func (v *clientVaultService) Save(ctx context.Context, session *Session, vault models.VaultData) error {
	if session == nil {
		return ErrNoSession
	}

	plaintext, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("error serializing vault: %w", err)
	}

	blob, err := session.Cipher().Encrypt(string(plaintext))
	if err != nil {
		return fmt.Errorf("error encrypting vault: %w", err)
	}

	// cache first so a relay outage never loses the newest snapshot
	if cacheErr := v.cache.Put(ctx, session.Email(), blob); cacheErr != nil {
		v.logger.Err(cacheErr).Str("func", "*clientVaultService.Save").Msg("cache write failed")
	}

	if err = v.adapter.PutVault(ctx, blob); err != nil {
		return fmt.Errorf("vault upload failed: %w", err)
	}

	return nil
}

func (v *clientVaultService) decrypt(session *Session, blob string) (models.VaultData, error) {
	plaintext, err := session.Cipher().Decrypt(blob)
	if err != nil {
		return models.VaultData{}, fmt.Errorf("%w: %v", ErrVaultDecryption, err)
	}

	var vault models.VaultData
	if err = json.Unmarshal([]byte(plaintext), &vault); err != nil {
		return models.VaultData{}, fmt.Errorf("%w: malformed vault payload: %v", ErrVaultDecryption, err)
	}

	return vault, nil
}
