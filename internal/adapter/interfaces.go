// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/anorlov/vaultshare/models"
)

// RelayAdapter is the client-side view of the relay REST API. Every method
// moves ciphertext or public material only — the relay never receives a
// value it could decrypt.
type RelayAdapter interface {
	// SetToken stores the bearer token for subsequent authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token, empty if none.
	Token() string

	// Register creates an account: email, auth-hash verifier, public key,
	// and the master-password-encrypted private key. On success the bearer
	// token from the response header is stored.
	Register(ctx context.Context, user models.User) error

	// Login authenticates with the auth-hash verifier and returns the
	// stored key material. The bearer token is stored on success.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetVault fetches the caller's vault ciphertext. ErrNotFound means no
	// vault has been saved yet — a distinct outcome from any decrypt error.
	GetVault(ctx context.Context) (string, error)

	// PutVault replaces the caller's vault ciphertext. Last write wins.
	PutVault(ctx context.Context, encryptedData string) error

	// GetPublicKey looks up the registered public key for email.
	// ErrNotFound when the address has no registered key.
	GetPublicKey(ctx context.Context, email string) (string, error)

	// CreateShare submits a share envelope and returns its opaque id.
	CreateShare(ctx context.Context, req models.ShareRequest) (string, error)

	// ListShares returns the caller's pending inbox.
	ListShares(ctx context.Context) ([]models.ShareEnvelope, error)

	// DeleteShare removes an envelope by id. ErrNotFound when the envelope
	// is already gone — callers use this as the consumed-exactly-once gate.
	DeleteShare(ctx context.Context, id string) error
}
