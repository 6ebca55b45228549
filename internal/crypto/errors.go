package crypto

import "errors"

var (
	// ErrKeyNotSet is returned by vault cipher operations invoked before
	// SetKey, or after Clear. Callers must treat it as a programming or
	// session-lifecycle error and abort the operation.
	ErrKeyNotSet = errors.New("master key is not set")

	// ErrDecryption is returned when a vault blob cannot be decrypted:
	// wrong master password or malformed/tampered ciphertext. Never retried
	// automatically with the same key.
	ErrDecryption = errors.New("decryption failed")

	// ErrUnwrap is returned when an RSA-wrapped key cannot be recovered:
	// the private key does not match or the ciphertext is corrupted.
	ErrUnwrap = errors.New("key unwrap failed")

	// ErrPayloadTooLarge is returned by EncryptWithPublicKey when the
	// plaintext exceeds the RSA-OAEP ceiling. Public-key encryption here is
	// for wrapping symmetric keys, never bulk data.
	ErrPayloadTooLarge = errors.New("payload exceeds RSA-OAEP limit")

	// ErrMalformedKey is returned when an encoded public or private key
	// cannot be decoded.
	ErrMalformedKey = errors.New("malformed key encoding")
)
