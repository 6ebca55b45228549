package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/anorlov/vaultshare/internal/logger"
)

const createCacheTable = `CREATE TABLE IF NOT EXISTS vault_cache (
		account        TEXT PRIMARY KEY,
		encrypted_data TEXT NOT NULL,
		updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

const (
	putCachedVault = `INSERT INTO vault_cache (account, encrypted_data, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (account)
		DO UPDATE SET encrypted_data = excluded.encrypted_data, updated_at = CURRENT_TIMESTAMP;`

	getCachedVault = `SELECT encrypted_data
		FROM vault_cache
		WHERE account = $1;`
)

// sqliteVaultCache keeps the last-known-good vault ciphertext per account
// in a local sqlite file, so a relay outage never loses the latest
// snapshot. The cache holds ciphertext only.
type sqliteVaultCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteVaultCache opens (creating if needed) the cache file at path
// and ensures the vault_cache table exists.
func NewSQLiteVaultCache(ctx context.Context, path string, log *logger.Logger) (VaultCache, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewSQLiteVaultCache").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteVaultCache").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteVaultCache").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createCacheTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteVaultCache").Msg("error creating cache table")
		return nil, fmt.Errorf("error creating cache table: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteVaultCache").Msg("connected to local cache successfully")

	return &sqliteVaultCache{db: conn, logger: log}, nil
}

func (c *sqliteVaultCache) Put(ctx context.Context, email, encryptedData string) error {
	if _, err := c.db.ExecContext(ctx, putCachedVault, email, encryptedData); err != nil {
		c.logger.Err(err).Str("func", "*sqliteVaultCache.Put").Msg("error: upsert failed")
		return fmt.Errorf("error caching vault: %w", err)
	}

	return nil
}

func (c *sqliteVaultCache) Get(ctx context.Context, email string) (string, error) {
	var encryptedData string
	row := c.db.QueryRowContext(ctx, getCachedVault, email)

	if err := row.Scan(&encryptedData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCacheMiss
		}

		c.logger.Err(err).Str("func", "*sqliteVaultCache.Get").Msg("error: scanning error")
		return "", fmt.Errorf("error reading cached vault: %w", err)
	}

	return encryptedData, nil
}

func (c *sqliteVaultCache) Close() error {
	return c.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
