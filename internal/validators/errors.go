package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail             = errors.New("invalid email address")
	ErrEmptyAuthHash            = errors.New("auth hash verifier is required")
	ErrEmptyPublicKey           = errors.New("public key is required")
	ErrEmptyEncryptedPrivateKey = errors.New("encrypted private key is required")
	ErrEmptyEncryptedData       = errors.New("encrypted data is required")
	ErrEmptyEncryptedKey        = errors.New("encrypted key is required")
)
