package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/anorlov/vaultshare/models"
)

// UserRepository persists relay accounts: the auth-hash verifier and the
// key material uploaded at signup.
type UserRepository interface {
	// CreateUser inserts a new account. ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the stored account. ErrNoUserWasFound when
	// the email is not registered.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetPublicKeyByEmail returns only the public key for the directory
	// lookup. ErrNoUserWasFound when absent.
	GetPublicKeyByEmail(ctx context.Context, email string) (string, error)
}

// VaultRepository stores one opaque ciphertext blob per user. The relay
// has no key that could open a blob; it stores and returns bytes.
type VaultRepository interface {
	// UpsertVault replaces the user's blob (last write wins).
	UpsertVault(ctx context.Context, userID int64, encryptedData string) error

	// GetVault returns the user's blob. ErrVaultNotFound when the user has
	// never saved one — callers must keep this distinct from any error.
	GetVault(ctx context.Context, userID int64) (string, error)
}

// ShareRepository stores share envelopes routed between users. Envelope
// payload columns are opaque to the relay.
type ShareRepository interface {
	// CreateShare persists a new envelope.
	CreateShare(ctx context.Context, envelope models.ShareEnvelope) error

	// ListByRecipient returns the pending inbox for an email, newest first.
	ListByRecipient(ctx context.Context, recipientEmail string) ([]models.ShareEnvelope, error)

	// DeleteByIDAndRecipient removes one envelope, guarding that only its
	// recipient can consume it. ErrEnvelopeNotFound when nothing was
	// deleted — the exactly-once signal for accept retries.
	DeleteByIDAndRecipient(ctx context.Context, id, recipientEmail string) error

	// DeleteOlderThan removes envelopes created before the cutoff and
	// reports how many were swept. Used by the retention janitor.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// VaultCache is the client-side last-known-good store: the most recent
// vault ciphertext per account, kept in a local sqlite file so a relay
// outage never loses the latest snapshot. Ciphertext only — the cache is
// exactly as opaque as the relay copy.
type VaultCache interface {
	Put(ctx context.Context, email, encryptedData string) error

	// Get returns the cached blob. ErrCacheMiss when the account has no
	// cached vault.
	Get(ctx context.Context, email string) (string, error)

	Close() error
}
