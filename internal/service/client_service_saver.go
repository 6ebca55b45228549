package service

import (
	"context"
	"sync"
	"time"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/models"
)

const defaultDebounce = time.Second

// vaultSaver coalesces rapid vault mutations into one save. Each Schedule
// restarts the quiet-period timer with the latest snapshot; when the timer
// fires the snapshot is persisted once. Flush forces the pending snapshot
// out immediately (logout, process exit).
type vaultSaver struct {
	vaultService ClientVaultService
	debounce     time.Duration
	logger       *logger.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingSave
}

type pendingSave struct {
	session *Session
	vault   models.VaultData
}

// NewVaultSaver constructs a VaultSaver with the given quiet period.
// A non-positive debounce falls back to one second.
func NewVaultSaver(vaultService ClientVaultService, debounce time.Duration, logger *logger.Logger) VaultSaver {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &vaultSaver{
		vaultService: vaultService,
		debounce:     debounce,
		logger:       logger,
	}
}

// Schedule (re)arms the debounce timer with the latest snapshot. Only the
// newest snapshot survives a burst; intermediate states are never saved.
func (s *vaultSaver) Schedule(session *Session, vault models.VaultData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &pendingSave{session: session, vault: vault}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

func (s *vaultSaver) fire() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if p == nil {
		return
	}

	if err := s.vaultService.Save(context.Background(), p.session, p.vault); err != nil {
		s.logger.Err(err).Str("func", "*vaultSaver.fire").Msg("debounced vault save failed")
	}
}

// Flush persists any pending snapshot immediately and stops the timer.
// Returns nil when nothing is pending.
func (s *vaultSaver) Flush(ctx context.Context) error {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if p == nil {
		return nil
	}

	return s.vaultService.Save(ctx, p.session, p.vault)
}

// Stop cancels any pending save without persisting.
func (s *vaultSaver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
