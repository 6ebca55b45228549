package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/anorlov/vaultshare/models"
)

// ClientAuthService is the client-side contract for account creation and
// session unlock. All key derivation happens here; the relay only ever
// receives the auth-hash verifier and ciphertext.
type ClientAuthService interface {
	// Register creates a new account: generates the RSA keypair, encrypts
	// the private key under the master password, computes the auth-hash
	// verifier, and uploads the bundle.
	Register(ctx context.Context, email, masterPassword string) error

	// Login authenticates, downloads the key material, decrypts the
	// private key with the master password, and returns the unlocked
	// session. The master password itself is never retained.
	Login(ctx context.Context, email, masterPassword string) (*Session, error)

	// Logout erases the session's key material and clears the transport
	// token. Safe to call on a nil session.
	Logout(session *Session)
}

// ClientVaultService moves the whole-vault snapshot between plaintext in
// memory and ciphertext at rest.
type ClientVaultService interface {
	// Load fetches and decrypts the vault. A relay outage falls back to
	// the local last-known-good cache; a blob the session key cannot open
	// surfaces ErrVaultDecryption and must never be overwritten.
	Load(ctx context.Context, session *Session) (models.VaultData, error)

	// Save serializes, encrypts and uploads the vault, refreshing the
	// local cache alongside.
	Save(ctx context.Context, session *Session, vault models.VaultData) error
}

// ClientSharingService implements the asymmetric item-sharing flow.
type ClientSharingService interface {
	// Send shares one entry with each recipient in turn: fresh one-time
	// key per recipient, entry sealed under it, key wrapped with the
	// recipient's public key. Per-recipient outcomes; one failure never
	// rolls back envelopes already delivered.
	//
	// entry must point into vault.Entries. Each delivered envelope is
	// recorded on the entry as a ShareGrant, registering the recipient
	// as an authorized contact when they are not one yet; the caller
	// owns persisting the mutated vault.
	Send(ctx context.Context, session *Session, entry *models.Entry, vault *models.VaultData, recipients []string) []models.ShareOutcome

	// Inbox lists the envelopes waiting for the session's account.
	Inbox(ctx context.Context) ([]models.ShareEnvelope, error)

	// Accept unwraps and decrypts an envelope, consumes it on the relay,
	// and on confirmed consumption files the entry into vault under the
	// shared folder. ErrEnvelopeConsumed when another device got there
	// first — the vault is then left untouched.
	Accept(ctx context.Context, session *Session, envelope models.ShareEnvelope, vault *models.VaultData) (models.Entry, error)

	// Reject consumes an envelope without ever touching its ciphertext.
	Reject(ctx context.Context, envelope models.ShareEnvelope) error
}

// VaultSaver debounces whole-vault persistence: every mutation schedules
// a save, rapid bursts coalesce, and at most one save runs after the last
// mutation's quiet period.
type VaultSaver interface {
	// Schedule (re)arms the debounce timer with the latest snapshot.
	// A snapshot scheduled while the timer runs replaces the pending one.
	Schedule(session *Session, vault models.VaultData)

	// Flush persists any pending snapshot immediately and stops the timer.
	Flush(ctx context.Context) error

	// Stop cancels any pending save without persisting.
	Stop()
}
