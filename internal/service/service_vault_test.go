package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.VaultRepository
// ─────────────────────────────────────────────

type mockVaultRepository struct {
	upsertFn func(ctx context.Context, userID int64, encryptedData string) error
	getFn    func(ctx context.Context, userID int64) (string, error)
}

func (m *mockVaultRepository) UpsertVault(ctx context.Context, userID int64, encryptedData string) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, encryptedData)
	}
	return nil
}

func (m *mockVaultRepository) GetVault(ctx context.Context, userID int64) (string, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return "", nil
}

// ─────────────────────────────────────────────
// SaveVault
// ─────────────────────────────────────────────

func TestVaultService_SaveVault(t *testing.T) {
	var savedUserID int64
	var savedData string

	repo := &mockVaultRepository{
		upsertFn: func(_ context.Context, userID int64, encryptedData string) error {
			savedUserID = userID
			savedData = encryptedData
			return nil
		},
	}
	svc := NewVaultService(repo, logger.NewLogger("test"))

	err := svc.SaveVault(context.Background(), 42, "ciphertext-blob")
	require.NoError(t, err)
	assert.Equal(t, int64(42), savedUserID)
	assert.Equal(t, "ciphertext-blob", savedData)
}

func TestVaultService_SaveVault_EmptyPayload(t *testing.T) {
	repoCalled := false
	repo := &mockVaultRepository{
		upsertFn: func(_ context.Context, _ int64, _ string) error {
			repoCalled = true
			return nil
		},
	}
	svc := NewVaultService(repo, logger.NewLogger("test"))

	err := svc.SaveVault(context.Background(), 42, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, repoCalled)
}

func TestVaultService_SaveVault_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &mockVaultRepository{
		upsertFn: func(_ context.Context, _ int64, _ string) error {
			return repoErr
		},
	}
	svc := NewVaultService(repo, logger.NewLogger("test"))

	err := svc.SaveVault(context.Background(), 42, "ciphertext-blob")
	assert.ErrorIs(t, err, repoErr)
}

// ─────────────────────────────────────────────
// GetVault
// ─────────────────────────────────────────────

func TestVaultService_GetVault(t *testing.T) {
	repo := &mockVaultRepository{
		getFn: func(_ context.Context, userID int64) (string, error) {
			assert.Equal(t, int64(7), userID)
			return "ciphertext-blob", nil
		},
	}
	svc := NewVaultService(repo, logger.NewLogger("test"))

	data, err := svc.GetVault(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext-blob", data)
}

func TestVaultService_GetVault_NotFound(t *testing.T) {
	repo := &mockVaultRepository{
		getFn: func(_ context.Context, _ int64) (string, error) {
			return "", store.ErrVaultNotFound
		},
	}
	svc := NewVaultService(repo, logger.NewLogger("test"))

	_, err := svc.GetVault(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrVaultNotFound)
}
