package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/models"
)

// shareRepository routes share envelopes through the "shared_items" table.
// Payload columns are opaque ciphertext; the relay only reads the
// addressing columns.
type shareRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateShare persists a new envelope and fills in the server-assigned
// CreatedAt timestamp.
func (r *shareRepository) CreateShare(ctx context.Context, envelope models.ShareEnvelope) error {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createShare,
		envelope.ID, envelope.SenderEmail, envelope.RecipientEmail, envelope.EncryptedData, envelope.EncryptedKey)

	if err := row.Scan(&envelope.CreatedAt); err != nil {
		log.Err(err).Str("func", "*shareRepository.CreateShare").Msg("error: insert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ListByRecipient returns the pending inbox for an email, newest first.
// An empty inbox is a nil slice, not an error.
func (r *shareRepository) ListByRecipient(ctx context.Context, recipientEmail string) ([]models.ShareEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("id", "sender_email", "recipient_email", "encrypted_data", "encrypted_key", "created_at").
		From("shared_items").
		Where(sq.Eq{"recipient_email": recipientEmail}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.ListByRecipient").Msg("error: building query")
		return nil, fmt.Errorf("error building inbox query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.ListByRecipient").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var envelopes []models.ShareEnvelope
	for rows.Next() {
		var e models.ShareEnvelope
		if err = rows.Scan(&e.ID, &e.SenderEmail, &e.RecipientEmail, &e.EncryptedData, &e.EncryptedKey, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*shareRepository.ListByRecipient").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		envelopes = append(envelopes, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return envelopes, nil
}

// DeleteByIDAndRecipient removes one envelope, guarding that only its
// recipient can consume it. [ErrEnvelopeNotFound] when no row matched —
// callers rely on this as the consumed-already signal.
func (r *shareRepository) DeleteByIDAndRecipient(ctx context.Context, id, recipientEmail string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteShareByIDAndRecipient, id, recipientEmail)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteByIDAndRecipient").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEnvelopeNotFound
	}

	return nil
}

// DeleteOlderThan sweeps envelopes created before the cutoff. Zero swept
// rows is a normal outcome, not an error.
func (r *shareRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Delete("shared_items").
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteOlderThan").Msg("error: building query")
		return 0, fmt.Errorf("error building sweep query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.DeleteOlderThan").Msg("error: sweep failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	swept, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return swept, nil
}
