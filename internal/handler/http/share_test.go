// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/models"
)

var sampleShareRequest = models.ShareRequest{
	RecipientEmail: "bob@example.com",
	EncryptedData:  "c2VhbGVkLWVudHJ5",
	EncryptedKey:   "d3JhcHBlZC1rZXk=",
}

// ─────────────────────────────────────────────
// createShare
// ─────────────────────────────────────────────

// TestCreateShare_Success verifies 201 with the envelope id, and that the
// sender identity comes from the verified token, not the body.
func TestCreateShare_Success(t *testing.T) {
	var gotSender string
	share := &mockShareService{
		createShareFn: func(_ context.Context, senderEmail string, req models.ShareRequest) (string, error) {
			gotSender = senderEmail
			require.Equal(t, sampleShareRequest, req)
			return "envelope-id-1", nil
		},
	}
	h := newTestHandler(t, nil, nil, share)

	body := jsonBody(t, sampleShareRequest)
	rec := httptest.NewRecorder()
	h.createShare(rec, authedRequest(http.MethodPost, "/api/share", body, 7, "alice@example.com"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice@example.com", gotSender)

	var resp models.ShareCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "envelope-id-1", resp.ID)
}

// TestCreateShare_InvalidData verifies the 400 for an incomplete envelope.
func TestCreateShare_InvalidData(t *testing.T) {
	share := &mockShareService{
		createShareFn: func(_ context.Context, _ string, _ models.ShareRequest) (string, error) {
			return "", service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, nil, nil, share)

	body := jsonBody(t, models.ShareRequest{RecipientEmail: "bob@example.com"})
	rec := httptest.NewRecorder()
	h.createShare(rec, authedRequest(http.MethodPost, "/api/share", body, 7, "alice@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestCreateShare_InvalidJSON verifies the 400 on a malformed body.
func TestCreateShare_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockShareService{})

	rec := httptest.NewRecorder()
	h.createShare(rec, authedRequest(http.MethodPost, "/api/share", "{oops", 7, "alice@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestCreateShare_NoIdentity verifies the unauthenticated guard.
func TestCreateShare_NoIdentity(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockShareService{})

	req := httptest.NewRequest(http.MethodPost, "/api/share", nil)
	rec := httptest.NewRecorder()
	h.createShare(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listShares
// ─────────────────────────────────────────────

// TestListShares_Success verifies that the inbox is looked up by the
// authenticated email and returned as-is.
func TestListShares_Success(t *testing.T) {
	envelopes := []models.ShareEnvelope{
		{ID: "id-2", SenderEmail: "bob@example.com", RecipientEmail: "alice@example.com", CreatedAt: time.Now()},
		{ID: "id-1", SenderEmail: "carol@example.com", RecipientEmail: "alice@example.com"},
	}
	share := &mockShareService{
		inboxFn: func(_ context.Context, recipientEmail string) ([]models.ShareEnvelope, error) {
			require.Equal(t, "alice@example.com", recipientEmail)
			return envelopes, nil
		},
	}
	h := newTestHandler(t, nil, nil, share)

	rec := httptest.NewRecorder()
	h.listShares(rec, authedRequest(http.MethodGet, "/api/share", "", 7, "alice@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.ShareEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, "id-1", got[1].ID)
}

// TestListShares_EmptyInboxIsArray verifies an empty inbox serialises as
// [] rather than null, so clients can range over it unconditionally.
func TestListShares_EmptyInboxIsArray(t *testing.T) {
	share := &mockShareService{
		inboxFn: func(_ context.Context, _ string) ([]models.ShareEnvelope, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, nil, nil, share)

	rec := httptest.NewRecorder()
	h.listShares(rec, authedRequest(http.MethodGet, "/api/share", "", 7, "alice@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// TestListShares_StorageError verifies the 500 fallback.
func TestListShares_StorageError(t *testing.T) {
	share := &mockShareService{
		inboxFn: func(_ context.Context, _ string) ([]models.ShareEnvelope, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newTestHandler(t, nil, nil, share)

	rec := httptest.NewRecorder()
	h.listShares(rec, authedRequest(http.MethodGet, "/api/share", "", 7, "alice@example.com"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// deleteShare
// ─────────────────────────────────────────────

// TestDeleteShare_Success verifies 204 and that the delete is guarded by
// the authenticated recipient email.
func TestDeleteShare_Success(t *testing.T) {
	var gotID, gotRecipient string
	share := &mockShareService{
		deleteShareFn: func(_ context.Context, id, recipientEmail string) error {
			gotID = id
			gotRecipient = recipientEmail
			return nil
		},
	}
	h := newTestHandler(t, nil, nil, share)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/share/envelope-id-1", "", 7, "alice@example.com"), "id", "envelope-id-1")
	rec := httptest.NewRecorder()
	h.deleteShare(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "envelope-id-1", gotID)
	assert.Equal(t, "alice@example.com", gotRecipient)
}

// TestDeleteShare_AlreadyConsumed verifies the 404 that makes accepting a
// share exactly-once: the second delete of the same envelope fails.
func TestDeleteShare_AlreadyConsumed(t *testing.T) {
	share := &mockShareService{
		deleteShareFn: func(_ context.Context, _, _ string) error {
			return store.ErrEnvelopeNotFound
		},
	}
	h := newTestHandler(t, nil, nil, share)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/share/gone", "", 7, "alice@example.com"), "id", "gone")
	rec := httptest.NewRecorder()
	h.deleteShare(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestDeleteShare_StorageError verifies the 500 fallback.
func TestDeleteShare_StorageError(t *testing.T) {
	share := &mockShareService{
		deleteShareFn: func(_ context.Context, _, _ string) error {
			return errors.New("connection refused")
		},
	}
	h := newTestHandler(t, nil, nil, share)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/share/id", "", 7, "alice@example.com"), "id", "id")
	rec := httptest.NewRecorder()
	h.deleteShare(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
