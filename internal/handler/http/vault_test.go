// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

// authedRequest stamps the identity the auth middleware would have set.
func authedRequest(method, target string, body string, userID int64, email string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.UserEmailCtxKey, email)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// getVault
// ─────────────────────────────────────────────

// TestGetVault_Success verifies that the stored blob is returned verbatim
// for the authenticated user.
func TestGetVault_Success(t *testing.T) {
	vault := &mockVaultService{
		getVaultFn: func(_ context.Context, userID int64) (string, error) {
			require.Equal(t, int64(7), userID)
			return "opaque-ciphertext", nil
		},
	}
	h := newTestHandler(t, nil, vault, nil)

	rec := httptest.NewRecorder()
	h.getVault(rec, authedRequest(http.MethodGet, "/api/vault", "", 7, "alice@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)

	var blob models.VaultBlob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blob))
	assert.Equal(t, "opaque-ciphertext", blob.EncryptedData)
}

// TestGetVault_NotFound verifies the 404 for an account that has never
// saved a vault.
func TestGetVault_NotFound(t *testing.T) {
	vault := &mockVaultService{
		getVaultFn: func(_ context.Context, _ int64) (string, error) {
			return "", store.ErrVaultNotFound
		},
	}
	h := newTestHandler(t, nil, vault, nil)

	rec := httptest.NewRecorder()
	h.getVault(rec, authedRequest(http.MethodGet, "/api/vault", "", 7, "alice@example.com"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetVault_NoIdentity verifies that a request that somehow bypassed the
// auth middleware is rejected rather than served.
func TestGetVault_NoIdentity(t *testing.T) {
	h := newTestHandler(t, nil, &mockVaultService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	rec := httptest.NewRecorder()
	h.getVault(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetVault_StorageError verifies the 500 fallback.
func TestGetVault_StorageError(t *testing.T) {
	vault := &mockVaultService{
		getVaultFn: func(_ context.Context, _ int64) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	h := newTestHandler(t, nil, vault, nil)

	rec := httptest.NewRecorder()
	h.getVault(rec, authedRequest(http.MethodGet, "/api/vault", "", 7, "alice@example.com"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// putVault
// ─────────────────────────────────────────────

// TestPutVault_Success verifies that the uploaded blob reaches the service
// under the authenticated user's id.
func TestPutVault_Success(t *testing.T) {
	var savedID int64
	var savedData string
	vault := &mockVaultService{
		saveVaultFn: func(_ context.Context, userID int64, encryptedData string) error {
			savedID = userID
			savedData = encryptedData
			return nil
		},
	}
	h := newTestHandler(t, nil, vault, nil)

	body := jsonBody(t, models.VaultBlob{EncryptedData: "fresh-ciphertext"})
	rec := httptest.NewRecorder()
	h.putVault(rec, authedRequest(http.MethodPut, "/api/vault", body, 7, "alice@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), savedID)
	assert.Equal(t, "fresh-ciphertext", savedData)
}

// TestPutVault_InvalidJSON verifies the 400 on a malformed body.
func TestPutVault_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, &mockVaultService{}, nil)

	rec := httptest.NewRecorder()
	h.putVault(rec, authedRequest(http.MethodPut, "/api/vault", "{broken", 7, "alice@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestPutVault_ServiceError verifies that service errors map through
// statusFromError.
func TestPutVault_ServiceError(t *testing.T) {
	vault := &mockVaultService{
		saveVaultFn: func(_ context.Context, _ int64, _ string) error {
			return errors.New("disk full")
		},
	}
	h := newTestHandler(t, nil, vault, nil)

	body := jsonBody(t, models.VaultBlob{EncryptedData: "blob"})
	rec := httptest.NewRecorder()
	h.putVault(rec, authedRequest(http.MethodPut, "/api/vault", body, 7, "alice@example.com"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestPutVault_NoIdentity verifies the unauthenticated guard.
func TestPutVault_NoIdentity(t *testing.T) {
	h := newTestHandler(t, nil, &mockVaultService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/vault", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.putVault(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
