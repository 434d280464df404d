package tui

import (
	"strings"

	"github.com/MKhiriev/go-wallet-dapp/internal/service"
	"github.com/MKhiriev/go-wallet-dapp/internal/utils"
	"github.com/MKhiriev/go-wallet-dapp/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// maxMessages is how many recent coordinator messages stay on screen.
const maxMessages = 5

const maxMessageWidth = 60

type walletModel struct {
	coordinator service.EventCoordinator
	states      <-chan models.UIState
	events      <-chan models.UIEvent

	appName   string
	buildInfo models.AppBuildInfo

	state    models.UIState
	address  string
	messages []string
	status   string
	pending  bool

	showBuildInfo bool

	spinner spinner.Model
	help    help.Model

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error
}

func newWalletModel(
	coordinator service.EventCoordinator,
	states <-chan models.UIState,
	events <-chan models.UIEvent,
	appName string,
	buildInfo models.AppBuildInfo,
) walletModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return walletModel{
		coordinator:    coordinator,
		states:         states,
		events:         events,
		appName:        appName,
		buildInfo:      buildInfo,
		spinner:        s,
		help:           help.New(),
		writeClipboard: clipboard.WriteAll,
	}
}

func (m walletModel) Init() tea.Cmd {
	return tea.Batch(waitForState(m.states), waitForEvent(m.events), m.spinner.Tick)
}

func (m walletModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case stateMsg:
		m.state = msg.state
		m.address = m.coordinator.SelectedAddress()
		m.pending = false
		return m, waitForState(m.states)
	case statesClosedMsg:
		return m, nil
	case eventMsg:
		if message, ok := msg.event.(models.Message); ok {
			m.pushMessage(message.Text)
		}
		m.pending = false
		return m, waitForEvent(m.events)
	case copiedMsg:
		m.status = "Copied " + msg.what
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m walletModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.connect):
		m.pending = true
		m.coordinator.Handle(models.Connect)
	case key.Matches(msg, keys.balance):
		m.pending = true
		m.coordinator.UpdateBalance()
	case key.Matches(msg, keys.disconnect):
		m.coordinator.Handle(models.Disconnect)
	case key.Matches(msg, keys.copyAddress):
		return m, cmdCopyToClipboard(m.writeClipboard, "address", m.address)
	case key.Matches(msg, keys.copyBalance):
		return m, cmdCopyToClipboard(m.writeClipboard, "balance", m.state.Balance)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *walletModel) pushMessage(text string) {
	m.messages = append(m.messages, fitText(text, maxMessageWidth))
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m walletModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.appName, m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(field("Session", m.sessionLabel()))
	b.WriteString("\n")
	b.WriteString(field("Address", utils.ShortAddress(m.address)))
	b.WriteString("\n")
	b.WriteString(field("Balance", m.state.Balance))
	b.WriteString("\n")

	if len(m.messages) > 0 {
		b.WriteString("\n")
		b.WriteString(messageStyle.Render(strings.Join(m.messages, "\n")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(m.appName), b.String(), m.help.View(keys))
}

func (m walletModel) sessionLabel() string {
	switch {
	case m.pending:
		return m.spinner.View() + " waiting for wallet"
	case m.address != "":
		return "connected"
	case m.state.IsConnecting:
		return "connecting"
	default:
		return "disconnected"
	}
}
