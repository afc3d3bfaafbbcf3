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

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", h.getConfig)
		r.Get("/sim-mode", h.getSimMode)
		r.Put("/sim-mode", h.putSimMode)
		r.Get("/version", h.getVersion)
	})

	router.MethodNotAllowed(notFoundOnUnsupportedMethod)

	return router
}
