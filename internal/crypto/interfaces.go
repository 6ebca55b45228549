package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/anorlov/vaultshare/models"

// VaultCipher performs all symmetric cryptography for one session. It is
// deliberately session-scoped rather than process-global: the key lifecycle
// (SetKey at login, Clear at logout) is an explicit, testable contract, and
// two sessions with different master passwords can coexist in one process.
//
// Scheme:
//
//	key  = Argon2id(masterSecret, salt)     fresh 16-byte salt per blob
//	blob = base64(salt ‖ nonce ‖ AES-256-GCM(plaintext))
type VaultCipher interface {
	// SetKey establishes the master secret used by Encrypt and Decrypt.
	// The secret exists only in process memory.
	SetKey(secret string)

	// Clear erases the master secret. Every Encrypt/Decrypt after Clear
	// fails with ErrKeyNotSet — operations never silently reuse stale keys.
	Clear()

	// Encrypt seals plaintext under the current master secret.
	// Returns ErrKeyNotSet if no secret is set.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a blob produced by Encrypt. Returns ErrKeyNotSet if no
	// secret is set, ErrDecryption on wrong secret or malformed input.
	Decrypt(ciphertext string) (string, error)

	// Hash returns the hex SHA-256 digest of input. Used for the login
	// verifier sent to the relay; never usable as the encryption key.
	Hash(input string) string
}

// KeyPairService generates and applies per-user RSA-OAEP keypairs. Both
// halves travel as portable encoded strings: base64 PKIX DER public,
// base64 PKCS#8 DER private — the same formats the key-exchange side of
// any WebCrypto or OpenSSL peer understands.
type KeyPairService interface {
	// GenerateKeyPair creates a fresh 2048-bit RSA keypair from the OS
	// CSPRNG. Called once per account at signup.
	GenerateKeyPair() (models.KeyPair, error)

	// EncryptWithPublicKey encrypts a short payload (a symmetric key) with
	// RSA-OAEP/SHA-256 under the encoded public key. Returns
	// ErrPayloadTooLarge when data does not fit the OAEP ceiling.
	EncryptWithPublicKey(data string, publicKey string) (string, error)

	// DecryptWithPrivateKey is the inverse. Returns ErrUnwrap when the
	// private key does not match or the ciphertext is malformed.
	DecryptWithPrivateKey(ciphertext string, privateKey string) (string, error)
}
