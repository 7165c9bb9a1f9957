package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/workers"
)

type Handler struct {
	services    *service.Services
	syncTrigger workers.SyncTrigger
	metrics     http.Handler

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer is exposed on GET /metrics.
func NewHandler(services *service.Services, syncTrigger workers.SyncTrigger, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		syncTrigger: syncTrigger,
		metrics:     promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		logger:      logger,
	}
}
