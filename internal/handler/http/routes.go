package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Use(middleware.Compress(5, "application/json"))

			r.Get("/", h.listDevices)
			r.Post("/", h.createDevice)
			r.Get("/{id}", h.getDevice)
			r.Put("/{id}", h.updateDevice)
			r.Delete("/{id}", h.deleteDevice)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Use(middleware.Compress(5, "application/json"))

			r.Get("/", h.listSales)
			r.Post("/", h.sell)
			r.Get("/remote", h.listRemoteSales)
			r.Get("/remote/{id}", h.getRemoteSale)
			r.Get("/{id}", h.getSale)
		})

		r.Post("/sync", h.triggerSync)
		r.Get("/version", h.getVersion)
	})

	router.Method("GET", "/metrics", h.metrics)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
