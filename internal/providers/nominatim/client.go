package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"gridcast/internal/transport"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Portland,+Oregon&format=json&limit=1
const (
	baseURL = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewClient(t *transport.Client, logger *slog.Logger) *Client {
	return &Client{
		transport: t,
		baseURL:   baseURL,
		logger:    logger.With("component", "nominatim-client"),
	}
}

// Search resolves a free-text place name to candidate locations. Only the
// best match is requested (limit=1) and results are restricted to the US,
// since the weather provider covers no other territory.
func (c *Client) Search(ctx context.Context, query string) ([]SearchAPIResult, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", "us")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching Nominatim",
		"query", query,
		"url", u.String(),
	)

	body, err := c.transport.Get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	// Parse the JSON response
	var results []SearchAPIResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return results, nil
}
