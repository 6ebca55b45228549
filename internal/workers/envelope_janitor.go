// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package workers

import (
	"context"
	"time"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
)

const (
	defaultEnvelopeTTL   = 30 * 24 * time.Hour
	defaultSweepInterval = time.Hour
)

// EnvelopeJanitor periodically removes share envelopes that were never
// accepted or rejected. A pending envelope is ciphertext the recipient may
// still want, so the retention window is generous; after it passes the
// sender is expected to re-share.
type EnvelopeJanitor struct {
	shareRepository store.ShareRepository
	ttl             time.Duration
	interval        time.Duration
	logger          *logger.Logger
}

// NewEnvelopeJanitor builds a janitor sweeping envelopes older than ttl
// every interval. Non-positive values fall back to the defaults.
func NewEnvelopeJanitor(shareRepository store.ShareRepository, ttl, interval time.Duration, logger *logger.Logger) *EnvelopeJanitor {
	if ttl <= 0 {
		ttl = defaultEnvelopeTTL
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &EnvelopeJanitor{
		shareRepository: shareRepository,
		ttl:             ttl,
		interval:        interval,
		logger:          logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns.
func (j *EnvelopeJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.Sweep(context.Background())
		}
	}()
}

// Sweep deletes every envelope past the retention window once.
func (j *EnvelopeJanitor) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)

	swept, err := j.shareRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Err(err).Msg("envelope sweep failed")
		return
	}

	if swept > 0 {
		j.logger.Info().Int64("swept", swept).Time("cutoff", cutoff).Msg("expired share envelopes removed")
	}
}
