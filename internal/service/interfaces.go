package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/anorlov/vaultshare/models"
)

// AuthService is the relay-side contract for account registration,
// credential verification and JWT token lifecycle. The relay only ever
// sees the auth-hash verifier — never a master password.
type AuthService interface {
	// RegisterUser creates a new account with the uploaded key material.
	// Returns the persisted user (with a server-assigned UserID) or:
	//   - ErrInvalidDataProvided if email, auth hash or a key is empty.
	//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the auth-hash verifier against the stored one and
	// returns the full account record, including the encrypted private
	// key the client needs to unlock its session.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetPublicKey returns the registered public key for an email. The
	// directory lookup behind the sharing flow.
	GetPublicKey(ctx context.Context, email string) (string, error)

	// CreateToken issues a signed JWT carrying the user's id and email.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string. Any validation failure is
	// normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService stores one opaque ciphertext blob per user.
type VaultService interface {
	// SaveVault replaces the user's blob. Last write wins.
	SaveVault(ctx context.Context, userID int64, encryptedData string) error

	// GetVault returns the user's blob, or a wrapped store.ErrVaultNotFound
	// when the account has never saved one.
	GetVault(ctx context.Context, userID int64) (string, error)
}

// ShareService routes opaque share envelopes between users.
type ShareService interface {
	// CreateShare assigns a fresh envelope id and persists the envelope.
	CreateShare(ctx context.Context, senderEmail string, req models.ShareRequest) (string, error)

	// Inbox returns the pending envelopes addressed to an email.
	Inbox(ctx context.Context, recipientEmail string) ([]models.ShareEnvelope, error)

	// DeleteShare removes one envelope, guarded by the recipient's email.
	// A wrapped store.ErrEnvelopeNotFound means it was already consumed.
	DeleteShare(ctx context.Context, id, recipientEmail string) error
}
