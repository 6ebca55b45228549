// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package validators

import (
	"context"
	"net/mail"

	"github.com/anorlov/vaultshare/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldEmail targets the account email of a registration bundle,
	// or the recipient email of a share request.
	FieldEmail = "email"

	// FieldAuthHash targets the client-computed login verifier.
	FieldAuthHash = "auth_hash"

	// FieldPublicKey targets the plaintext public key of a registration bundle.
	FieldPublicKey = "public_key"

	// FieldEncryptedPrivateKey targets the password-encrypted private key
	// of a registration bundle.
	FieldEncryptedPrivateKey = "encrypted_private_key"

	// FieldEncryptedData targets the sealed entry payload of a share request.
	FieldEncryptedData = "encrypted_data"

	// FieldEncryptedKey targets the recipient-wrapped one-time key
	// of a share request.
	FieldEncryptedKey = "encrypted_key"
)

// AccountValidator implements the Validator interface for the account-facing
// domain models: User (registration bundle) and ShareRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.User / *models.User
//   - models.ShareRequest / *models.ShareRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail reports whether addr parses as a bare RFC 5322 address.
// Display names are rejected: the relay stores the address verbatim and
// uses it as the inbox key, so "Alice <a@b.c>" would never match a lookup.
func isValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	return parsed.Address == addr
}

// validateUser validates a registration bundle.
//
// Default validated fields (when none specified):
// Email, AuthHash, PublicKey, EncryptedPrivateKey.
//
// Login requests carry only the first two; callers scope the validation
// with FieldEmail and FieldAuthHash for that path.
//
// Returns the first encountered validation error or nil.
func (v *AccountValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldAuthHash, FieldPublicKey, FieldEncryptedPrivateKey}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldAuthHash:
			if user.AuthHash == "" {
				return ErrEmptyAuthHash
			}
		case FieldPublicKey:
			if user.PublicKey == "" {
				return ErrEmptyPublicKey
			}
		case FieldEncryptedPrivateKey:
			if user.EncryptedPrivateKey == "" {
				return ErrEmptyEncryptedPrivateKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateShareRequest validates a share envelope submission.
//
// Default validated fields: Email (recipient), EncryptedData, EncryptedKey.
// The sender address is stamped from the verified token by the service,
// so it is never part of the request and never validated here.
func (v *AccountValidator) validateShareRequest(ctx context.Context, req models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldEncryptedData, FieldEncryptedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.RecipientEmail) {
				return ErrInvalidEmail
			}
		case FieldEncryptedData:
			if req.EncryptedData == "" {
				return ErrEmptyEncryptedData
			}
		case FieldEncryptedKey:
			if req.EncryptedKey == "" {
				return ErrEmptyEncryptedKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
