// Package support submits support messages to the Pokemon TCG Pocket gift
// support endpoint.
package support

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the production gift support endpoint.
const DefaultEndpoint = "https://gift.pokemontcgpocket.com/api/gift/post-support/"

const defaultTimeout = 30 * time.Second

// Response carries the endpoint's reply.
type Response struct {
	StatusCode int
	Body       string
}

// Client posts support submissions.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option adjusts client construction.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, primarily for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a client for the given endpoint. An empty endpoint selects
// DefaultEndpoint.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Post submits a support value and keyword as form data and returns the
// endpoint's response.
func (c *Client) Post(ctx context.Context, support, keyword string) (Response, error) {
	form := url.Values{}
	form.Set("support", support)
	form.Set("keyword", keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, fmt.Errorf("build support request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("post support after %s: %w", time.Since(start).Round(time.Millisecond), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Response{}, fmt.Errorf("read support response: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
