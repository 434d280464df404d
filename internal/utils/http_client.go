package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with JSON content negotiation
// headers preset. Each call returns an independent client with its own
// connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithTimeout(15 * time.Second)
//	resp, err := client.R().SetBody(payload).Post("/v3/key")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithTimeout sets the per-request timeout and returns the receiver.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// CloseIdleConnections drops pooled keep-alive connections of the
// underlying transport.
func (c *HTTPClient) CloseIdleConnections() {
	c.GetClient().CloseIdleConnections()
}
