package service

import (
	"context"
	"fmt"

	"github.com/anorlov/vaultshare/internal/adapter"
	"github.com/anorlov/vaultshare/internal/crypto"
	"github.com/anorlov/vaultshare/models"
)

type clientAuthService struct {
	adapter        adapter.RelayAdapter
	keyPairService crypto.KeyPairService
}

// NewClientAuthService constructs a ClientAuthService over the relay
// adapter and the keypair service.
func NewClientAuthService(relayAdapter adapter.RelayAdapter, keyPairService crypto.KeyPairService) ClientAuthService {
	return &clientAuthService{
		adapter:        relayAdapter,
		keyPairService: keyPairService,
	}
}

// Register creates a new account.
//
// The uploaded bundle never contains anything the relay can open:
//   - AuthHash is a one-way verifier derived from the master password,
//     unusable as an encryption key.
//   - PublicKey is public by definition.
//   - EncryptedPrivateKey is sealed under the master password.
func (a *clientAuthService) Register(ctx context.Context, email, masterPassword string) error {
	if email == "" || masterPassword == "" {
		return ErrInvalidDataProvided
	}

	keyPair, err := a.keyPairService.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("error generating keypair: %w", err)
	}

	cipher := crypto.NewVaultCipher()
	cipher.SetKey(masterPassword)
	defer cipher.Clear()

	encryptedPrivateKey, err := cipher.Encrypt(keyPair.PrivateKey)
	if err != nil {
		return fmt.Errorf("error encrypting private key: %w", err)
	}

	user := models.User{
		Email:               email,
		AuthHash:            cipher.Hash(masterPassword + email),
		PublicKey:           keyPair.PublicKey,
		EncryptedPrivateKey: encryptedPrivateKey,
	}

	if err = a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

// Login authenticates and unlocks a session.
//
// The relay returns the account's key material; the private key is
// decrypted locally with the master password. A verifier mismatch is
// rejected server-side before any material is returned, so a decrypt
// failure here means a corrupted or tampered blob, not a typo.
func (a *clientAuthService) Login(ctx context.Context, email, masterPassword string) (*Session, error) {
	if email == "" || masterPassword == "" {
		return nil, ErrInvalidDataProvided
	}

	cipher := crypto.NewVaultCipher()
	cipher.SetKey(masterPassword)

	found, err := a.adapter.Login(ctx, models.User{
		Email:    email,
		AuthHash: cipher.Hash(masterPassword + email),
	})
	if err != nil {
		cipher.Clear()
		return nil, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	privateKey, err := cipher.Decrypt(found.EncryptedPrivateKey)
	if err != nil {
		cipher.Clear()
		return nil, fmt.Errorf("error decrypting private key: %w", err)
	}

	return NewSession(found.Email, privateKey, cipher), nil
}

// Logout erases the session's key material and the transport token.
func (a *clientAuthService) Logout(session *Session) {
	session.Clear()
	a.adapter.SetToken("")
}
