// Package tui is the terminal front-end of the wallet demo.
//
// It renders coordinator state snapshots and messages with bubbletea and
// translates key presses into wallet events.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-wallet-dapp/internal/logger"
	"github.com/MKhiriev/go-wallet-dapp/internal/service"
	"github.com/MKhiriev/go-wallet-dapp/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	coordinator service.EventCoordinator
	buildInfo   models.AppBuildInfo
	appName     string

	logger *logger.Logger
}

func New(coordinator service.EventCoordinator, appName string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if coordinator == nil {
		return nil, ErrNoCoordinator
	}
	return &TUI{
		coordinator: coordinator,
		buildInfo:   buildInfo,
		appName:     appName,
		logger:      logger.WithComponent("tui"),
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	states, stopStates := t.coordinator.SubscribeState()
	defer stopStates()
	events, stopEvents := t.coordinator.SubscribeEvents()
	defer stopEvents()

	model := newWalletModel(t.coordinator, states, events, t.appName, t.buildInfo)

	t.logger.Info().Msg("starting terminal UI")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	t.logger.Info().Msg("terminal UI closed")
	return nil
}
