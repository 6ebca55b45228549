package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

// getVault handles GET /api/vault: returns the authenticated user's
// encrypted vault blob. The relay never inspects the ciphertext.
func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	encryptedData, err := h.services.VaultService.GetVault(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrVaultNotFound) {
			http.Error(w, "vault not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error getting vault")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, models.VaultBlob{EncryptedData: encryptedData}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing vault response")
	}
}

// putVault handles PUT /api/vault: replaces the authenticated user's vault
// blob wholesale. Last write wins across devices.
func (h *Handler) putVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var blob models.VaultBlob
	if err := json.NewDecoder(r.Body).Decode(&blob); err != nil {
		log.Err(err).Msg("error decoding vault blob")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SaveVault(ctx, userID, blob.EncryptedData); err != nil {
		log.Err(err).Msg("error saving vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
