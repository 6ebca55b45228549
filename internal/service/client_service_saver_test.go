package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: ClientVaultService
// ─────────────────────────────────────────────

type countingVaultService struct {
	mu    sync.Mutex
	saves []models.VaultData
}

func (c *countingVaultService) Load(_ context.Context, _ *Session) (models.VaultData, error) {
	return models.EmptyVault(), nil
}

func (c *countingVaultService) Save(_ context.Context, _ *Session, vault models.VaultData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves = append(c.saves, vault)
	return nil
}

func (c *countingVaultService) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.saves)
}

func (c *countingVaultService) lastSave() models.VaultData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves[len(c.saves)-1]
}

func vaultWithFolder(name string) models.VaultData {
	vault := models.EmptyVault()
	vault.Folders = append(vault.Folders, name)
	return vault
}

func TestVaultSaver_BurstCoalescesToOneSave(t *testing.T) {
	svc := &countingVaultService{}
	saver := NewVaultSaver(svc, 50*time.Millisecond, logger.NewLogger("test"))
	session := newTestSession(t, "pw")

	saver.Schedule(session, vaultWithFolder("one"))
	saver.Schedule(session, vaultWithFolder("two"))
	saver.Schedule(session, vaultWithFolder("three"))

	assert.Equal(t, 0, svc.saveCount(), "no save before the quiet period")

	assert.Eventually(t, func() bool {
		return svc.saveCount() == 1
	}, time.Second, 10*time.Millisecond)

	// only the newest snapshot was persisted
	assert.Equal(t, []string{"three"}, svc.lastSave().Folders)
}

func TestVaultSaver_ScheduleRestartsQuietPeriod(t *testing.T) {
	svc := &countingVaultService{}
	saver := NewVaultSaver(svc, 80*time.Millisecond, logger.NewLogger("test"))
	session := newTestSession(t, "pw")

	saver.Schedule(session, vaultWithFolder("one"))
	time.Sleep(40 * time.Millisecond)
	saver.Schedule(session, vaultWithFolder("two"))
	time.Sleep(40 * time.Millisecond)

	// 80ms since the first schedule, but only 40ms since the second
	assert.Equal(t, 0, svc.saveCount())

	assert.Eventually(t, func() bool {
		return svc.saveCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestVaultSaver_FlushPersistsImmediately(t *testing.T) {
	svc := &countingVaultService{}
	saver := NewVaultSaver(svc, time.Minute, logger.NewLogger("test"))
	session := newTestSession(t, "pw")

	saver.Schedule(session, vaultWithFolder("pending"))

	require.NoError(t, saver.Flush(context.Background()))
	assert.Equal(t, 1, svc.saveCount())
	assert.Equal(t, []string{"pending"}, svc.lastSave().Folders)

	// nothing left pending: a second flush is a no-op
	require.NoError(t, saver.Flush(context.Background()))
	assert.Equal(t, 1, svc.saveCount())
}

func TestVaultSaver_StopCancelsPendingSave(t *testing.T) {
	svc := &countingVaultService{}
	saver := NewVaultSaver(svc, 30*time.Millisecond, logger.NewLogger("test"))
	session := newTestSession(t, "pw")

	saver.Schedule(session, vaultWithFolder("doomed"))
	saver.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, svc.saveCount())
}

func TestVaultSaver_FlushWithNothingPending(t *testing.T) {
	saver := NewVaultSaver(&countingVaultService{}, time.Second, logger.NewLogger("test"))
	require.NoError(t, saver.Flush(context.Background()))
}
