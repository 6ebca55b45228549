// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package http

import (
	"net/http"
	"time"

	"github.com/anorlov/vaultshare/internal/logger"
)

// withLogging is an access-log middleware. It records the request method,
// URI, resulting status, response size and elapsed time for every request
// passing through the router.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
