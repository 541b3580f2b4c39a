package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseSize = 4 << 20

// HTTPDoer is the part of *http.Client the clients need.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Response is an upstream answer read fully into memory.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// BaseClient sends requests to one upstream service.
type BaseClient struct {
	baseURL string
	client  HTTPDoer
}

// NewBaseClient returns a client rooted at baseURL.
func NewBaseClient(baseURL string, client HTTPDoer) *BaseClient {
	return &BaseClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Do sends one request. Only transport failures are errors; every HTTP
// status comes back in the Response.
func (c *BaseClient) Do(ctx context.Context, method, path string, body []byte, headers http.Header) (*Response, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("clients: build %s %s: %w", method, target, err)
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	if len(body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clients: %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("clients: read %s %s: %w", method, target, err)
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// NewDefaultHTTPClient returns an *http.Client with timeout and a pooled
// transport sized for a handful of upstreams.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 32
	transport.IdleConnTimeout = 90 * time.Second
	return &http.Client{Timeout: timeout, Transport: transport}
}
