// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

// getPublicKey handles GET /api/keys/{email}: the public-key directory
// lookup behind the sharing flow. Any authenticated user may look up any
// registered email.
func (h *Handler) getPublicKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	email := chi.URLParam(r, "email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	publicKey, err := h.services.AuthService.GetPublicKey(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			http.Error(w, "no user with such email", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error getting public key")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, models.PublicKeyResponse{Email: email, PublicKey: publicKey}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public key response")
	}
}
