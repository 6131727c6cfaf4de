// Package transport defines the narrow network surface the client depends
// on. Only request execution lives here; status codes are interpreted by
// the caller, never by the transport.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	NetworkErr = errors.New("network request failed")
)

// Response is the raw result of an executed request. Body is fully read
// and the connection released before the Response is returned.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client executes a single POST. A non-2xx status is not an error at this
// layer: the transport only fails on transport-level problems (unreachable
// host, timeout, cancelled context).
type Client interface {
	Post(ctx context.Context, url string, body string, headers map[string]string) (*Response, error)
}

// HTTPClient is the default Client backed by net/http.
type HTTPClient struct {
	client *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a transport with a 30 second overall timeout.
// Callers needing different limits pass their own http.Client.
func NewHTTPClient(client *http.Client) *HTTPClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPClient{client: client}
}

func (c *HTTPClient) Post(ctx context.Context, url string, body string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", NetworkErr, err)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", NetworkErr, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", NetworkErr, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: payload}, nil
}
