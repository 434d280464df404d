package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
)

var errNoUI = errors.New("no ui is configured")

type App struct {
	ui      UI
	workers Workers
	tasks   TaskWaiter

	logger *logger.Logger
}

// NewApp builds the client runtime. workers and tasks may be nil.
func NewApp(ui UI, workers Workers, tasks TaskWaiter, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, workers: workers, tasks: tasks, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.workers != nil {
		a.workers.Start(ctx)
	}

	err := a.ui.Run(ctx)

	if a.workers != nil {
		a.workers.Stop()
	}
	if a.tasks != nil {
		a.logger.Debug().Msg("waiting for pending wallet calls")
		a.tasks.Wait()
	}

	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
