package store

import (
	"context"
	"fmt"

	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
)

// Storages aggregates every relay-side repository behind one constructor.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
	ShareRepository ShareRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// up the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		VaultRepository: NewVaultRepository(db, log),
		ShareRepository: NewShareRepository(db, log),
	}, nil
}
