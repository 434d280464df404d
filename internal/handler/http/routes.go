package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Route("/api", func(r chi.Router) {
			r.Post("/events/{event}", h.postEvent)
			r.Post("/balance/refresh", h.refreshBalance)
			r.Get("/state", h.getState)
			r.Get("/messages", h.streamMessages)
			r.Get("/version/", h.getVersion)
		})
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	return router
}
