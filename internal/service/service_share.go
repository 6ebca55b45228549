// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package service

import (
	"context"
	"fmt"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/internal/validators"
	"github.com/anorlov/vaultshare/models"
)

// shareService is the concrete implementation of ShareService. Envelopes
// pass through unread: the payload and the wrapped key are ciphertext the
// relay cannot open.
type shareService struct {
	shareRepository store.ShareRepository
	uuidGenerator   utils.UUIDGenerator
	validator       validators.Validator
	logger          *logger.Logger
}

// NewShareService constructs a ShareService over the given repository.
func NewShareService(shareRepository store.ShareRepository, logger *logger.Logger) ShareService {
	return &shareService{
		shareRepository: shareRepository,
		validator:       validators.NewAccountValidator(),
		logger:          logger,
	}
}

// CreateShare assigns a fresh envelope id, stamps the authenticated
// sender's email, and persists the envelope. The sender address comes from
// the verified token, never from the request body.
func (s *shareService) CreateShare(ctx context.Context, senderEmail string, req models.ShareRequest) (string, error) {
	log := logger.FromContext(ctx)

	if senderEmail == "" {
		log.Error().Msg("share without an authenticated sender")
		return "", ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("sender", senderEmail).Str("recipient", req.RecipientEmail).Msg("invalid share data provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	envelope := models.ShareEnvelope{
		ID:             s.uuidGenerator.Generate(),
		SenderEmail:    senderEmail,
		RecipientEmail: req.RecipientEmail,
		EncryptedData:  req.EncryptedData,
		EncryptedKey:   req.EncryptedKey,
	}

	if err := s.shareRepository.CreateShare(ctx, envelope); err != nil {
		log.Err(err).Str("sender", senderEmail).Msg("share creation failed")
		return "", fmt.Errorf("share creation failed: %w", err)
	}

	return envelope.ID, nil
}

// Inbox returns the pending envelopes addressed to an email, newest first.
func (s *shareService) Inbox(ctx context.Context, recipientEmail string) ([]models.ShareEnvelope, error) {
	log := logger.FromContext(ctx)

	if recipientEmail == "" {
		return nil, ErrInvalidDataProvided
	}

	envelopes, err := s.shareRepository.ListByRecipient(ctx, recipientEmail)
	if err != nil {
		log.Err(err).Str("recipient", recipientEmail).Msg("inbox listing failed")
		return nil, fmt.Errorf("inbox listing failed: %w", err)
	}

	return envelopes, nil
}

// DeleteShare removes one envelope, guarded by the recipient's email so a
// caller can only consume envelopes addressed to them. A wrapped
// store.ErrEnvelopeNotFound means it was already consumed — the relay's
// single source of truth for exactly-once accept.
func (s *shareService) DeleteShare(ctx context.Context, id, recipientEmail string) error {
	log := logger.FromContext(ctx)

	if id == "" || recipientEmail == "" {
		return ErrInvalidDataProvided
	}

	if err := s.shareRepository.DeleteByIDAndRecipient(ctx, id, recipientEmail); err != nil {
		log.Err(err).Str("id", id).Str("recipient", recipientEmail).Msg("share deletion failed")
		return fmt.Errorf("share deletion failed: %w", err)
	}

	return nil
}
