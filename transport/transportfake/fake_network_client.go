package transportfake

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/go-auth-client/transport"
)

var _ transport.Client = (*FakeNetworkClient)(nil)

// Request captures a single Post call for later assertions.
type Request struct {
	URL     string
	Body    string
	Headers map[string]string
}

// FakeNetworkClient replays canned responses and records every request.
type FakeNetworkClient struct {
	response *transport.Response
	err      error
	requests []Request
	lock     sync.Mutex
}

func NewFakeNetworkClient() *FakeNetworkClient {
	return &FakeNetworkClient{}
}

// Respond sets the response returned by subsequent Post calls.
func (c *FakeNetworkClient) Respond(statusCode int, body string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.response = &transport.Response{StatusCode: statusCode, Body: []byte(body)}
	c.err = nil
}

// Fail makes subsequent Post calls return a transport-level error.
func (c *FakeNetworkClient) Fail(err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.response = nil
	c.err = err
}

func (c *FakeNetworkClient) Post(_ context.Context, url string, body string, headers map[string]string) (*transport.Response, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	copied := make(map[string]string, len(headers))
	for name, value := range headers {
		copied[name] = value
	}
	c.requests = append(c.requests, Request{URL: url, Body: body, Headers: copied})
	if c.err != nil {
		return nil, fmt.Errorf("%w: %w", transport.NetworkErr, c.err)
	}
	if c.response == nil {
		return nil, fmt.Errorf("%w: no response configured", transport.NetworkErr)
	}
	return c.response, nil
}

// Requests returns the recorded Post calls in order.
func (c *FakeNetworkClient) Requests() []Request {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]Request(nil), c.requests...)
}
