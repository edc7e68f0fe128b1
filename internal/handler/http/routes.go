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
		r.Get("/api/ping", h.ping)
	})

	// audit entries, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/audit/", h.createEntry)
		r.Get("/api/audit/", h.listEntries)
		r.Get("/api/audit/export", h.exportEntries)
		r.Patch("/api/audit/{id}", h.updateEntry)
		r.Delete("/api/audit/{id}", h.deleteEntry)
	})

	return router
}
