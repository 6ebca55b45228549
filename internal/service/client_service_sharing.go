// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anorlov/vaultshare/internal/adapter"
	"github.com/anorlov/vaultshare/internal/crypto"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

type clientSharingService struct {
	adapter        adapter.RelayAdapter
	keyPairService crypto.KeyPairService
	uuidGenerator  utils.UUIDGenerator
	logger         *logger.Logger
}

// NewClientSharingService constructs a ClientSharingService.
func NewClientSharingService(relayAdapter adapter.RelayAdapter, keyPairService crypto.KeyPairService, logger *logger.Logger) ClientSharingService {
	return &clientSharingService{
		adapter:        relayAdapter,
		keyPairService: keyPairService,
		logger:         logger,
	}
}

// Send shares one entry with each recipient in turn.
//
// Per recipient: look up their public key, generate a fresh one-time
// symmetric key, seal the entry under it, wrap the key with RSA-OAEP, and
// submit the envelope. Every recipient gets an independent envelope —
// compromising one wrapped key exposes one copy, and a failure midway
// never rolls back envelopes already delivered.
//
// Delivered envelopes are recorded on the owner's entry: the recipient
// becomes an authorized contact of the vault (if not one already) and a
// ShareGrant referencing that contact is appended to entry.SharedWith.
// The grant list is owner bookkeeping and never leaves the vault; the
// sealed payload carries the entry with SharedWith stripped.
func (s *clientSharingService) Send(ctx context.Context, session *Session, entry *models.Entry, vault *models.VaultData, recipients []string) []models.ShareOutcome {
	outcomes := make([]models.ShareOutcome, 0, len(recipients))

	shared := *entry
	shared.SharedWith = nil
	payload, err := json.Marshal(shared)
	if err != nil {
		for _, r := range recipients {
			outcomes = append(outcomes, models.ShareOutcome{ContactEmail: r, Err: fmt.Errorf("error serializing entry: %w", err)})
		}
		return outcomes
	}

	delivered := false
	for _, recipient := range recipients {
		outcome := s.sendOne(ctx, recipient, string(payload))
		if outcome.Ok() {
			s.recordGrant(vault, entry, recipient)
			delivered = true
		}
		outcomes = append(outcomes, outcome)
	}

	if delivered {
		entry.UpdatedAt = time.Now()
	}

	return outcomes
}

// recordGrant registers recipient as an authorized contact of the vault
// (view-level, active) unless already present, and appends a grant for
// that contact to the entry. Sharing the same entry with the same contact
// twice leaves a single grant.
func (s *clientSharingService) recordGrant(vault *models.VaultData, entry *models.Entry, recipient string) {
	contact := vault.ContactByEmail(recipient)
	if contact == nil {
		vault.Contacts = append(vault.Contacts, models.AuthorizedContact{
			ID:          s.uuidGenerator.Generate(),
			Name:        recipient,
			Email:       recipient,
			AccessLevel: models.AccessView,
			IsActive:    true,
			CreatedAt:   time.Now(),
		})
		contact = &vault.Contacts[len(vault.Contacts)-1]
	}

	for _, grant := range entry.SharedWith {
		if grant.ContactID == contact.ID {
			return
		}
	}

	entry.SharedWith = append(entry.SharedWith, models.ShareGrant{
		ContactID:   contact.ID,
		AccessLevel: contact.AccessLevel,
	})
}

func (s *clientSharingService) sendOne(ctx context.Context, recipient, payload string) models.ShareOutcome {
	publicKey, err := s.adapter.GetPublicKey(ctx, recipient)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.ShareOutcome{ContactEmail: recipient, Err: ErrRecipientKeyMissing}
		}
		return models.ShareOutcome{ContactEmail: recipient, Err: fmt.Errorf("public key lookup failed: %w", err)}
	}

	oneTimeKey, err := crypto.NewOneTimeKey()
	if err != nil {
		return models.ShareOutcome{ContactEmail: recipient, Err: fmt.Errorf("error generating one-time key: %w", err)}
	}

	encryptedData, err := crypto.SealWithKey(payload, oneTimeKey)
	if err != nil {
		return models.ShareOutcome{ContactEmail: recipient, Err: fmt.Errorf("error sealing entry: %w", err)}
	}

	encryptedKey, err := s.keyPairService.EncryptWithPublicKey(base64.StdEncoding.EncodeToString(oneTimeKey), publicKey)
	if err != nil {
		return models.ShareOutcome{ContactEmail: recipient, Err: fmt.Errorf("error wrapping one-time key: %w", err)}
	}

	envelopeID, err := s.adapter.CreateShare(ctx, models.ShareRequest{
		RecipientEmail: recipient,
		EncryptedData:  encryptedData,
		EncryptedKey:   encryptedKey,
	})
	if err != nil {
		return models.ShareOutcome{ContactEmail: recipient, Err: fmt.Errorf("error submitting envelope: %w", err)}
	}

	return models.ShareOutcome{ContactEmail: recipient, EnvelopeID: envelopeID}
}

// Inbox lists the envelopes waiting for the session's account.
func (s *clientSharingService) Inbox(ctx context.Context) ([]models.ShareEnvelope, error) {
	envelopes, err := s.adapter.ListShares(ctx)
	if err != nil {
		return nil, fmt.Errorf("inbox listing failed: %w", err)
	}

	return envelopes, nil
}

// Accept consumes an envelope and files its entry into the vault.
//
// Order matters: the entry is decrypted first, then the envelope is
// deleted on the relay, and only a confirmed deletion admits the entry
// into the vault. The relay's delete is the exactly-once gate — if
// another device consumed the envelope already, the delete reports not
// found, ErrEnvelopeConsumed surfaces, and this vault stays untouched.
func (s *clientSharingService) Accept(ctx context.Context, session *Session, envelope models.ShareEnvelope, vault *models.VaultData) (models.Entry, error) {
	if session == nil {
		return models.Entry{}, ErrNoSession
	}

	wrappedKey, err := s.keyPairService.DecryptWithPrivateKey(envelope.EncryptedKey, session.PrivateKey())
	if err != nil {
		return models.Entry{}, fmt.Errorf("error unwrapping one-time key: %w", err)
	}

	oneTimeKey, err := base64.StdEncoding.DecodeString(wrappedKey)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error decoding one-time key: %w", err)
	}

	payload, err := crypto.OpenWithKey(envelope.EncryptedData, oneTimeKey)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error opening shared entry: %w", err)
	}

	var entry models.Entry
	if err = json.Unmarshal([]byte(payload), &entry); err != nil {
		return models.Entry{}, fmt.Errorf("malformed shared entry: %w", err)
	}

	if err = s.adapter.DeleteShare(ctx, envelope.ID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Entry{}, ErrEnvelopeConsumed
		}
		return models.Entry{}, fmt.Errorf("error consuming envelope: %w", err)
	}

	// consumed on the relay — the entry now belongs to this vault
	now := time.Now()
	entry.ID = s.uuidGenerator.Generate()
	entry.Folder = models.SharedFolder
	entry.SharedWith = nil
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if entry.Notes == "" {
		entry.Notes = fmt.Sprintf("Shared by %s", envelope.SenderEmail)
	}

	vault.Entries = append(vault.Entries, entry)

	return entry, nil
}

// Reject consumes an envelope without decrypting anything. No key is
// unwrapped and no plaintext is ever produced.
func (s *clientSharingService) Reject(ctx context.Context, envelope models.ShareEnvelope) error {
	if err := s.adapter.DeleteShare(ctx, envelope.ID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return ErrEnvelopeConsumed
		}
		return fmt.Errorf("error consuming envelope: %w", err)
	}

	return nil
}
