package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

func waitForState(states <-chan models.UIState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return statesClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

func waitForEvent(events <-chan models.UIEvent) tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: <-events}
	}
}

func cmdCopyToClipboard(write func(string) error, what, text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copyFailedMsg{err: fmt.Errorf("%s: %w", what, ErrNothingToCopy)}
		}
		if err := write(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
