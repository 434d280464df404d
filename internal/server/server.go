package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-dapp/internal/config"
	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	workers    Workers
	tasks      TaskWaiter
	logger     *logger.Logger
}

// NewServer wires the router, the background workers and the coordinator
// task waiter into a runnable server. workers and tasks may be nil.
func NewServer(router http.Handler, cfg config.Server, workers Workers, tasks TaskWaiter, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || router == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg.HTTPAddress, cfg.RequestTimeout, logger),
		address:    cfg.HTTPAddress,
		workers:    workers,
		tasks:      tasks,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		s.logger.Error().Err(err).Str("address", s.address).Msg("error listening")
		return
	}

	if err = s.run(ctx, ln); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.workers != nil {
		s.workers.Stop()
	}
	if s.tasks != nil {
		s.tasks.Wait()
	}
}

// run serves on ln until ctx is done, then shuts everything down.
func (s *server) run(ctx context.Context, ln net.Listener) error {
	if s.workers != nil {
		s.workers.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.Serve(ln)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
