// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anorlov/vaultshare/internal/logger"
)

// vaultRepository stores one opaque ciphertext blob per user in the
// "vaults" table. The relay never holds a key that could open a blob.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertVault replaces the user's blob. Last write wins: the upsert keeps
// exactly one row per user and the client owns conflict resolution.
func (r *vaultRepository) UpsertVault(ctx context.Context, userID int64, encryptedData string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertVault, userID, encryptedData); err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpsertVault").Msg("error: upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetVault returns the user's blob. [ErrVaultNotFound] when the user has
// never saved one — first login on a fresh account hits this path.
func (r *vaultRepository) GetVault(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	var encryptedData string
	row := r.db.QueryRowContext(ctx, getVault, userID)

	if err := row.Scan(&encryptedData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrVaultNotFound
		}

		log.Err(err).Str("func", "*vaultRepository.GetVault").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return encryptedData, nil
}
