package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/internal/store"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
)

// createShare handles POST /api/share: stores one opaque envelope addressed
// to a recipient email. The sender identity comes from the verified token,
// never from the request body.
func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	senderEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding share request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.services.ShareService.CreateShare(ctx, senderEmail, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error creating share envelope")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, models.ShareCreatedResponse{ID: id}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing share response")
	}
}

// listShares handles GET /api/share: the authenticated user's inbox of
// pending envelopes, newest first.
func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	recipientEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	envelopes, err := h.services.ShareService.Inbox(ctx, recipientEmail)
	if err != nil {
		log.Err(err).Msg("error listing share inbox")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// An empty inbox serialises as [], not null.
	if envelopes == nil {
		envelopes = []models.ShareEnvelope{}
	}

	if _, err := utils.WriteJSON(w, envelopes, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing inbox response")
	}
}

// deleteShare handles DELETE /api/share/{id}: consumes one envelope. Only
// the addressed recipient can delete it, and the first delete wins — that
// guarantee is what makes accepting a share exactly-once on the client.
func (h *Handler) deleteShare(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	recipientEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "envelope id is required", http.StatusBadRequest)
		return
	}

	if err := h.services.ShareService.DeleteShare(ctx, id, recipientEmail); err != nil {
		if errors.Is(err, store.ErrEnvelopeNotFound) {
			http.Error(w, "share envelope not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error deleting share envelope")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
