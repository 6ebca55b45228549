package service

import (
	"context"
	"fmt"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
)

// vaultService is the concrete implementation of VaultService. The relay
// treats every vault as an opaque string; no method here can inspect or
// validate the plaintext.
type vaultService struct {
	vaultRepository store.VaultRepository
	logger          *logger.Logger
}

// NewVaultService constructs a VaultService over the given repository.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		logger:          logger,
	}
}

// SaveVault replaces the user's blob. Last write wins between devices;
// the client owns conflict resolution.
func (v *vaultService) SaveVault(ctx context.Context, userID int64, encryptedData string) error {
	log := logger.FromContext(ctx)

	if encryptedData == "" {
		log.Error().Int64("userID", userID).Msg("empty vault payload")
		return ErrInvalidDataProvided
	}

	if err := v.vaultRepository.UpsertVault(ctx, userID, encryptedData); err != nil {
		log.Err(err).Int64("userID", userID).Msg("vault save failed")
		return fmt.Errorf("vault save failed: %w", err)
	}

	return nil
}

// GetVault returns the user's blob, or a wrapped store.ErrVaultNotFound
// when the account has never saved one.
func (v *vaultService) GetVault(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	encryptedData, err := v.vaultRepository.GetVault(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("vault fetch failed")
		return "", fmt.Errorf("vault fetch failed: %w", err)
	}

	return encryptedData, nil
}
