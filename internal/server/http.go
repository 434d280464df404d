package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
)

const defaultShutdownTimeout = 5 * time.Second

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// newHTTPServer applies requestTimeout to reading requests only; writes are
// unbounded so /api/messages can stream.
func newHTTPServer(router http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	shutdownTimeout := defaultShutdownTimeout
	if requestTimeout > 0 {
		shutdownTimeout = requestTimeout
	}

	// Request contexts derive from baseCtx, which is cancelled on shutdown so
	// open SSE streams return instead of holding Shutdown until its timeout.
	baseCtx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: requestTimeout,
		ReadTimeout:       requestTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancel)

	return &httpServer{
		server:          srv,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Serve blocks on ln until the server is shut down.
func (h *httpServer) Serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("HTTP server shutdown, closing remaining connections")
		_ = h.server.Close()
	}
}
