package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/models"
)

// withURLParam injects a chi route parameter into the request context, so
// handlers can be exercised without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestGetPublicKey_Success verifies the directory lookup response.
func TestGetPublicKey_Success(t *testing.T) {
	auth := &mockAuthService{
		getPublicKeyFn: func(_ context.Context, email string) (string, error) {
			require.Equal(t, "bob@example.com", email)
			return "Ym9iLXB1YmxpYy1rZXk=", nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/keys/bob@example.com", nil), "email", "bob@example.com")
	rec := httptest.NewRecorder()
	h.getPublicKey(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PublicKeyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bob@example.com", resp.Email)
	assert.Equal(t, "Ym9iLXB1YmxpYy1rZXk=", resp.PublicKey)
}

// TestGetPublicKey_UnknownEmail verifies the 404 for an unregistered email.
func TestGetPublicKey_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		getPublicKeyFn: func(_ context.Context, _ string) (string, error) {
			return "", store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/keys/ghost@example.com", nil), "email", "ghost@example.com")
	rec := httptest.NewRecorder()
	h.getPublicKey(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetPublicKey_EmptyEmail verifies the 400 guard.
func TestGetPublicKey_EmptyEmail(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/keys/", nil)
	rec := httptest.NewRecorder()
	h.getPublicKey(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetPublicKey_StorageError verifies the 500 fallback.
func TestGetPublicKey_StorageError(t *testing.T) {
	auth := &mockAuthService{
		getPublicKeyFn: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/keys/bob@example.com", nil), "email", "bob@example.com")
	rec := httptest.NewRecorder()
	h.getPublicKey(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
