package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vault", h.getVault)
		r.With(h.vaultHashing).Put("/api/vault", h.putVault)

		r.Get("/api/keys/{email}", h.getPublicKey)

		r.Post("/api/share", h.createShare)
		r.Get("/api/share", h.listShares)
		r.Delete("/api/share/{id}", h.deleteShare)
	})

	return router
}
