// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	// Argon2id tuning parameters, kept in the struct so deployment targets
	// with tight memory (mobile) can use different values.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	mu     sync.RWMutex
	secret []byte // nil until SetKey; nil again after Clear
}

// NewVaultCipher constructs a [VaultCipher] with the OWASP-recommended
// Argon2id parameters (1 iteration, 64 MiB, 4 threads). The cipher starts
// without a key; SetKey must be called before any other operation.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// SetKey implements [VaultCipher].
func (c *vaultCipher) SetKey(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = []byte(secret)
}

// Clear implements [VaultCipher]. The secret slice is zeroed before being
// dropped so the master password does not linger in reachable memory.
func (c *vaultCipher) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.secret {
		c.secret[i] = 0
	}
	c.secret = nil
}

// Encrypt implements [VaultCipher]. Each call draws a fresh salt, so the
// same plaintext never produces the same blob twice and the derived key
// differs per blob.
func (c *vaultCipher) Encrypt(plaintext string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.secret == nil {
		return "", ErrKeyNotSet
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := c.deriveKey(salt)
	sealed, err := SealWithKey(plaintext, key)
	if err != nil {
		return "", err
	}

	// SealWithKey already base64-encodes nonce ‖ ct; re-encode with the
	// salt prefixed so Decrypt can re-derive the key.
	inner, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("re-encode sealed blob: %w", err)
	}

	return base64.StdEncoding.EncodeToString(append(salt, inner...)), nil
}

// Decrypt implements [VaultCipher]. The GCM authentication tag makes a
// wrong master password an explicit ErrDecryption instead of garbage
// output; callers additionally treat JSON parse failure of the result as
// "wrong master password" when deserializing vault snapshots.
func (c *vaultCipher) Decrypt(ciphertext string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.secret == nil {
		return "", ErrKeyNotSet
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryption, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob shorter than salt", ErrDecryption)
	}

	salt, inner := blob[:saltSize], blob[saltSize:]
	key := c.deriveKey(salt)

	plaintext, err := OpenWithKey(base64.StdEncoding.EncodeToString(inner), key)
	if err != nil {
		return "", err
	}

	return plaintext, nil
}

// Hash implements [VaultCipher].
func (c *vaultCipher) Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

func (c *vaultCipher) deriveKey(salt []byte) []byte {
	return argon2.IDKey(c.secret, salt, c.argonTime, c.argonMemory, c.argonThreads, keySize)
}

// NewOneTimeKey returns a fresh random 256-bit symmetric key from the OS
// CSPRNG. Used as the per-share ephemeral key; never reused.
func NewOneTimeKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate one-time key: %w", err)
	}
	return key, nil
}

// SealWithKey encrypts plaintext with a raw 32-byte key using AES-256-GCM
// and returns base64(nonce ‖ ciphertext). Used for share payloads, where
// the key is a one-time random key rather than a password-derived one.
func SealWithKey(plaintext string, key []byte) (string, error) {
	if len(key) != keySize {
		return "", fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ct...)), nil
}

// OpenWithKey is the inverse of [SealWithKey]. Wrong key or tampered input
// fails the GCM tag check and returns ErrDecryption.
func OpenWithKey(ciphertext string, key []byte) (string, error) {
	if len(key) != keySize {
		return "", fmt.Errorf("invalid key length: %d", len(key))
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecryption, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	if len(blob) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: blob shorter than nonce", ErrDecryption)
	}
	nonce, ct := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(plaintext), nil
}
