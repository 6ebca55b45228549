// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/anorlov/vaultshare/models"
)

const rsaBits = 2048

// oaepCeiling is the maximum plaintext RSA-OAEP can carry for a 2048-bit
// modulus with SHA-256: k - 2*hLen - 2 = 256 - 64 - 2.
const oaepCeiling = rsaBits/8 - 2*sha256.Size - 2

// keyPairService is the private implementation of [KeyPairService].
type keyPairService struct{}

// NewKeyPairService constructs a [KeyPairService].
func NewKeyPairService() KeyPairService {
	return &keyPairService{}
}

// GenerateKeyPair implements [KeyPairService].
func (k *keyPairService) GenerateKeyPair() (models.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaBits)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}

	return models.KeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(pubDER),
		PrivateKey: base64.StdEncoding.EncodeToString(privDER),
	}, nil
}

// EncryptWithPublicKey implements [KeyPairService].
func (k *keyPairService) EncryptWithPublicKey(data string, publicKey string) (string, error) {
	if len(data) > oaepCeiling {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(data), oaepCeiling)
	}

	pub, err := decodePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(data), nil)
	if err != nil {
		return "", fmt.Errorf("rsa-oaep encrypt: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ct), nil
}

// DecryptWithPrivateKey implements [KeyPairService].
func (k *keyPairService) DecryptWithPrivateKey(ciphertext string, privateKey string) (string, error) {
	priv, err := decodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrUnwrap, err)
	}

	// OAEP decryption failure subsumes "wrong private key" and "tampered
	// ciphertext" — indistinguishable on purpose.
	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnwrap, err)
	}

	return string(plaintext), nil
}

func decodePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrMalformedKey)
	}
	return pub, nil
}

func decodePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrMalformedKey)
	}
	return priv, nil
}
