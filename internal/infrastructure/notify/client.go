// Package notify sends best-effort HTTP notifications to peer services.
package notify

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MaxBodyBytes caps how much of a peer response is read
const MaxBodyBytes = 64 << 10

// Client performs GET requests with bounded connect and read phases
type Client struct {
	http *http.Client
}

// NewClient builds a client whose dial is bounded by connectTimeout, whose wait
// for response headers is bounded by readTimeout, and whose whole exchange is
// bounded by their sum. Outgoing requests carry the trace context.
func NewClient(connectTimeout, readTimeout time.Duration) *Client {
	dialer := &net.Dialer{Timeout: connectTimeout}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}
	return &Client{
		http: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   connectTimeout + readTimeout,
		},
	}
}

// Timeout returns the overall per-request bound
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get issues a GET and returns the status and at most MaxBodyBytes of the body.
// A non-2xx status is not an error; the caller decides.
func (c *Client) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return resp.StatusCode, body, fmt.Errorf("read body: %w", err)
	}
	// drain the rest so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, body, nil
}
