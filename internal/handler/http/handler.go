package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/service"
)

const defaultKeepAlive = 15 * time.Second

type Handler struct {
	coordinator service.EventCoordinator
	version     string
	metrics     http.Handler

	// keepAlive is the interval of SSE comment frames on idle streams.
	keepAlive time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// /metrics is not registered.
func NewHandler(coordinator service.EventCoordinator, version string, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		coordinator: coordinator,
		version:     version,
		metrics:     metrics,
		keepAlive:   defaultKeepAlive,
		logger:      logger,
	}
}
