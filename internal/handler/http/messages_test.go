package http

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-dapp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nonFlushingWriter hides http.Flusher from the handler.
type nonFlushingWriter struct {
	http.ResponseWriter
}

func readFrame(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return strings.Join(lines, "\n")
		}
		lines = append(lines, line)
	}
}

func TestStreamMessages_RelaysMessages(t *testing.T) {
	h, coordinator := newTestHandler(t)

	events := make(chan models.UIEvent, 2)
	var stopped atomic.Bool
	coordinator.EXPECT().SubscribeEvents().Return((<-chan models.UIEvent)(events), func() { stopped.Store(true) })

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events <- models.Message{Text: "Disconnected!"}
	events <- models.Message{Text: "Fetching the wallet balance"}

	reader := bufio.NewReader(resp.Body)
	assert.Equal(t, "event: message\ndata: {\"text\":\"Disconnected!\"}", readFrame(t, reader))
	assert.Equal(t, "event: message\ndata: {\"text\":\"Fetching the wallet balance\"}", readFrame(t, reader))

	resp.Body.Close()
	assert.Eventually(t, stopped.Load, time.Second, 10*time.Millisecond)
}

func TestStreamMessages_KeepAlive(t *testing.T) {
	h, coordinator := newTestHandler(t)
	h.keepAlive = 10 * time.Millisecond

	events := make(chan models.UIEvent)
	coordinator.EXPECT().SubscribeEvents().Return((<-chan models.UIEvent)(events), func() {})

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, ": keep-alive", readFrame(t, bufio.NewReader(resp.Body)))
}

func TestStreamMessages_RequiresFlusher(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	h.streamMessages(nonFlushingWriter{rec}, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrStreamingUnsupported.Error())
}
