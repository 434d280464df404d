package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-dapp/internal/mock"
	"github.com/MKhiriev/go-wallet-dapp/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func newTestModel(t *testing.T) (walletModel, *mock.MockEventCoordinator, chan models.UIState, chan models.UIEvent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockEventCoordinator(ctrl)
	states := make(chan models.UIState, 1)
	events := make(chan models.UIEvent, 1)

	m := newWalletModel(coordinator, states, events, "demo", models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"))
	return m, coordinator, states, events
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m walletModel, msg tea.Msg) (walletModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(walletModel)
	require.True(t, ok)
	return wm, cmd
}

// ── keys → events ────────────────────────────────────────────────────────────

func TestWalletModel_ConnectKey(t *testing.T) {
	m, coordinator, _, _ := newTestModel(t)
	coordinator.EXPECT().Handle(models.Connect)

	m, cmd := update(t, m, runeKey("c"))

	assert.Nil(t, cmd)
	assert.True(t, m.pending)
}

func TestWalletModel_BalanceKeyUsesUpdateBalance(t *testing.T) {
	m, coordinator, _, _ := newTestModel(t)
	coordinator.EXPECT().UpdateBalance()

	m, _ = update(t, m, runeKey("b"))
	assert.True(t, m.pending)
}

func TestWalletModel_DisconnectKey(t *testing.T) {
	m, coordinator, _, _ := newTestModel(t)
	coordinator.EXPECT().Handle(models.Disconnect)

	update(t, m, runeKey("d"))
}

func TestWalletModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		m, _, _, _ := newTestModel(t)

		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWalletModel_UnboundKeyIsIgnored(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	next, cmd := update(t, m, runeKey("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, m.state, next.state)
}

// ── coordinator streams ──────────────────────────────────────────────────────

func TestWalletModel_StateMsg(t *testing.T) {
	m, coordinator, states, _ := newTestModel(t)
	coordinator.EXPECT().SelectedAddress().Return(testAddress)
	m.pending = true

	m, cmd := update(t, m, stateMsg{state: models.UIState{IsConnecting: true, Balance: "26 ETH"}})

	assert.Equal(t, "26 ETH", m.state.Balance)
	assert.Equal(t, testAddress, m.address)
	assert.False(t, m.pending)

	// the returned command waits for the next snapshot
	states <- models.UIState{Balance: "NA"}
	assert.Equal(t, stateMsg{state: models.UIState{Balance: "NA"}}, cmd())
}

func TestWalletModel_StatesClosed(t *testing.T) {
	_, _, states, _ := newTestModel(t)
	close(states)

	assert.Equal(t, statesClosedMsg{}, waitForState(states)())
}

func TestWalletModel_EventMsgKeepsRecentMessages(t *testing.T) {
	m, _, _, events := newTestModel(t)

	var cmd tea.Cmd
	for i := 0; i < maxMessages+2; i++ {
		m, cmd = update(t, m, eventMsg{event: models.Message{Text: strings.Repeat("x", i+1)}})
	}

	require.Len(t, m.messages, maxMessages)
	assert.Equal(t, strings.Repeat("x", maxMessages+2), m.messages[maxMessages-1])

	events <- models.Message{Text: "Disconnected!"}
	assert.Equal(t, eventMsg{event: models.Message{Text: "Disconnected!"}}, cmd())
}

func TestWalletModel_LongMessageIsTruncated(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m, _ = update(t, m, eventMsg{event: models.Message{Text: strings.Repeat("a", 200)}})
	assert.Len(t, m.messages[0], maxMessageWidth)
}

// ── clipboard ────────────────────────────────────────────────────────────────

func TestWalletModel_CopyAddress(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	var copied string
	m.writeClipboard = func(s string) error { copied = s; return nil }
	m.address = testAddress

	_, cmd := update(t, m, runeKey("y"))
	require.NotNil(t, cmd)

	assert.Equal(t, copiedMsg{what: "address"}, cmd())
	assert.Equal(t, testAddress, copied)
}

func TestWalletModel_CopyBalanceEmpty(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m.writeClipboard = func(string) error { t.Fatal("clipboard must not be used"); return nil }

	_, cmd := update(t, m, runeKey("p"))
	msg, ok := cmd().(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.err, ErrNothingToCopy)
}

func TestWalletModel_CopyFailure(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m.writeClipboard = func(string) error { return errors.New("no xclip") }
	m.state.Balance = "1 ETH"

	_, cmd := update(t, m, runeKey("p"))
	msg, ok := cmd().(copyFailedMsg)
	require.True(t, ok)
	assert.Contains(t, msg.err.Error(), "no xclip")
}

func TestWalletModel_StatusLifecycle(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m, cmd := update(t, m, copiedMsg{what: "address"})
	assert.Equal(t, "Copied address", m.status)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

// ── build info ───────────────────────────────────────────────────────────────

func TestWalletModel_BuildInfoToggle(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m, _ = update(t, m, runeKey("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")

	// wallet keys are inert while the overlay is open
	m, _ = update(t, m, runeKey("c"))
	assert.True(t, m.showBuildInfo)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

// ── view ─────────────────────────────────────────────────────────────────────

func TestWalletModel_View(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m.address = testAddress
	m.state = models.UIState{IsConnecting: true, Balance: "26 ETH"}
	m.messages = []string{"Fetching the wallet balance"}

	view := m.View()

	assert.Contains(t, view, "DEMO")
	assert.Contains(t, view, "connected")
	assert.Contains(t, view, "0x5aAe…eAed")
	assert.Contains(t, view, "26 ETH")
	assert.Contains(t, view, "Fetching the wallet balance")
}

func TestWalletModel_SessionLabel(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	assert.Equal(t, "disconnected", m.sessionLabel())

	m.state.IsConnecting = true
	assert.Equal(t, "connecting", m.sessionLabel())

	m.address = testAddress
	assert.Equal(t, "connected", m.sessionLabel())

	m.pending = true
	assert.Contains(t, m.sessionLabel(), "waiting for wallet")
}

func TestNew_RequiresCoordinator(t *testing.T) {
	tui, err := New(nil, "demo", models.AppBuildInfo{}, nil)
	assert.Nil(t, tui)
	assert.ErrorIs(t, err, ErrNoCoordinator)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}
