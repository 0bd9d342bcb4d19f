package tripquery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client loads trip query responses from an http(s) URL or a local file.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client; a non-positive timeout leaves requests unbounded
// except by the caller's context.
func NewClient(timeout time.Duration) *Client {
	c := &http.Client{}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return &Client{httpClient: c}
}

// Fetch returns the raw body found at urlOrPath.
// Returns nil if urlOrPath is empty (absent result).
func (c *Client) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, nil
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", urlOrPath, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// Load fetches and decodes the trip query at urlOrPath.
func (c *Client) Load(ctx context.Context, urlOrPath string) (*TripQuery, error) {
	data, err := c.Fetch(ctx, urlOrPath)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
