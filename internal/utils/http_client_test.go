package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsJSONHeaders(t *testing.T) {
	var contentType, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewHTTPClient().R().SetBody(map[string]string{"a": "b"}).Post(srv.URL)
	require.NoError(t, err)

	assert.Contains(t, contentType, "application/json")
	assert.Equal(t, "application/json", accept)
}

func TestHTTPClient_WithTimeout(t *testing.T) {
	client := NewHTTPClient().WithTimeout(2 * time.Second)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)

	client.WithTimeout(0)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout, "zero timeout keeps the previous value")
}

func TestHTTPClient_CloseIdleConnections_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() { NewHTTPClient().CloseIdleConnections() })
}
