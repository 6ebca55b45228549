// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/utils"
)

// vaultHashing verifies the HMAC-SHA256 integrity signature carried in the
// HashSHA256 header on vault uploads. Requests without the header pass
// through untouched; a present-but-wrong signature is rejected with 400.
//
// The body is consumed for hashing and restored before the next handler
// runs.
func (h *Handler) vaultHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headerHash := r.Header.Get("HashSHA256")
		if headerHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("error reading request body for hash check")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum, err := hex.DecodeString(headerHash)
		if err != nil {
			log.Err(err).Msg("malformed HashSHA256 header")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if !utils.ValidHash(body, sum) {
			log.Error().Msg("request body failed integrity check")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
