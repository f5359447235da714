package zone

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"
)

// Card is one entry of a pack or promo listing page, in page order.
type Card struct {
	DetailURL string
	ImageURL  string
}

// Client provides access to the card catalog site.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a catalog site client.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("zone base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SetPath returns the listing path for a whole set.
func SetPath(expansionID string) string {
	return fmt.Sprintf("/sets/%s/", expansionID)
}

// PackPath returns the listing path for one pack of a set.
func PackPath(expansionID, packSlug string) string {
	return fmt.Sprintf("/sets/%s/packs/%s/", expansionID, packSlug)
}

// FetchCards fetches a listing page and returns its cards in page order.
func (c *Client) FetchCards(ctx context.Context, path string) ([]Card, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	cards, err := parseCardGrid(resp.Body, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing %s: %w", path, err)
	}
	return cards, nil
}

// FetchImage downloads and decodes a card thumbnail.
func (c *Client) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, errors.New("image url required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
