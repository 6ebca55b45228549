package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

// TestAuth_PropagatesIdentity verifies that a valid bearer token makes both
// the user id and email available to downstream handlers via the context.
func TestAuth_PropagatesIdentity(t *testing.T) {
	h := newTestHandler(t, authAs(42, "alice@example.com"), nil, nil)

	var gotID int64
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotID, ok = utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotEmail, ok = utils.GetUserEmailFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.Header.Set("Authorization", "Bearer any-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "alice@example.com", gotEmail)
}

// TestAuth_RejectsBadHeaders verifies the 401 paths for missing or
// malformed Authorization headers. The next handler must never run.
func TestAuth_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no token part", "Bearer"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{}, nil, nil)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

// TestAuth_RejectsInvalidToken verifies that a token failing validation is
// rejected with 401.
func TestAuth_RejectsInvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

// TestAuth_ProtectedRoutesViaRouter verifies that every authed route is
// actually behind the middleware when reached through the router.
func TestAuth_ProtectedRoutesViaRouter(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockVaultService{}, &mockShareService{}).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/vault"},
		{http.MethodPut, "/api/vault"},
		{http.MethodGet, "/api/keys/bob@example.com"},
		{http.MethodPost, "/api/share"},
		{http.MethodGet, "/api/share"},
		{http.MethodDelete, "/api/share/some-id"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"single part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
