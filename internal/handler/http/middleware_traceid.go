package http

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the request trace id across service boundaries.
// Clients may set it; otherwise the relay generates one.
const traceIDHeader = "X-Trace-ID"

// withTraceID ensures every request carries a trace id and attaches a
// request-scoped logger stamped with it, so all log entries produced while
// handling a single request can be correlated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		child := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := child.WithContext(r.Context())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
