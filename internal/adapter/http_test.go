// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) (RelayAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPRelayAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second},
		config.Security{HashKey: "test-hash-key"},
		logger.Nop(),
	)
	require.NoError(t, err)

	return a, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://relay.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://relay.example.com", got)

	_, err = normalizeBaseURL("  ")
	assert.Error(t, err)
}

func TestRegister_StoresBearerToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, user.AuthHash)

		w.Header().Set("Authorization", "Bearer test-token-123")
		w.WriteHeader(http.StatusOK)
	}))

	err := a.Register(context.Background(), models.User{
		Email:    "alice@example.com",
		AuthHash: "deadbeef",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token-123", a.Token())
}

func TestLogin_ReturnsKeyMaterial(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer login-token")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Email:               "alice@example.com",
			PublicKey:           "pub-key",
			EncryptedPrivateKey: "enc-priv-key",
		})
	}))

	user, err := a.Login(context.Background(), models.User{Email: "alice@example.com", AuthHash: "deadbeef"})
	require.NoError(t, err)
	assert.Equal(t, "pub-key", user.PublicKey)
	assert.Equal(t, "enc-priv-key", user.EncryptedPrivateKey)
	assert.Equal(t, "login-token", a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))

	_, err := a.Login(context.Background(), models.User{Email: "alice@example.com", AuthHash: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetVault_NotFoundIsDistinct(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no vault", http.StatusNotFound)
	}))

	_, err := a.GetVault(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutVault_SendsIntegrityHeader(t *testing.T) {
	var gotHash string
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotHash = r.Header.Get("HashSHA256")
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, a.PutVault(context.Background(), "opaque-ciphertext"))
	assert.NotEmpty(t, gotHash)
}

func TestShareLifecycle(t *testing.T) {
	deleted := map[string]bool{}
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/share":
			_ = json.NewEncoder(w).Encode(models.ShareCreatedResponse{ID: "env-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/share":
			_ = json.NewEncoder(w).Encode([]models.ShareEnvelope{{ID: "env-1", SenderEmail: "a@x", RecipientEmail: "b@x"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/share/env-1":
			if deleted["env-1"] {
				http.Error(w, "gone", http.StatusNotFound)
				return
			}
			deleted["env-1"] = true
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	id, err := a.CreateShare(ctx, models.ShareRequest{RecipientEmail: "b@x", EncryptedData: "ct", EncryptedKey: "ck"})
	require.NoError(t, err)
	assert.Equal(t, "env-1", id)

	inbox, err := a.ListShares(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	require.NoError(t, a.DeleteShare(ctx, "env-1"))

	// second delete reports the envelope already consumed
	err = a.DeleteShare(ctx, "env-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
