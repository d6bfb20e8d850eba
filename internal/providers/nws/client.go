package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gridcast/internal/transport"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/25.7700,-80.1900
// - https://api.weather.gov/alerts/active?point=25.7700,-80.1900
const (
	baseURL = "https://api.weather.gov"
)

// pointPrecision is the decimal precision used to key the points lookup.
// The API redirects coordinates with more decimal places; keeping a fixed
// precision avoids depending on provider-internal rounding.
const pointPrecision = "%.4f"

type Client struct {
	transport *transport.Client
	baseURL   string
	logger    *slog.Logger
}

func NewClient(t *transport.Client, logger *slog.Logger) *Client {
	return &Client{
		transport: t,
		baseURL:   baseURL,
		logger:    logger.With("component", "nws-client"),
	}
}

// GetPoint looks up the gridpoint metadata for a coordinate. A 404 response
// means the coordinate is outside NWS coverage and is returned untouched as
// a *transport.StatusError for the caller to interpret.
func (c *Client) GetPoint(ctx context.Context, latitude, longitude float64) (*PointAPIResponse, error) {
	u := fmt.Sprintf("%s/points/"+pointPrecision+","+pointPrecision, c.baseURL, latitude, longitude)

	c.logger.Debug("fetching NWS point data",
		"latitude", latitude,
		"longitude", longitude,
		"url", u,
	)

	body, err := c.transport.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	// Parse the JSON response
	var apiResp PointAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ActiveAlertsURL builds the active-alerts collection URL for a coordinate.
// The points payload carries no alert URL, so it is derived here with the
// same fixed precision as the points lookup.
func (c *Client) ActiveAlertsURL(latitude, longitude float64) string {
	return fmt.Sprintf("%s/alerts/active?point="+pointPrecision+","+pointPrecision, c.baseURL, latitude, longitude)
}

// GetForecast fetches a gridpoint forecast. The same payload shape is used
// by the daily and hourly endpoints, so the caller passes the URL resolved
// from the points lookup.
func (c *Client) GetForecast(ctx context.Context, url string) (*ForecastAPIResponse, error) {
	c.logger.Debug("fetching NWS forecast", "url", url)

	body, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	var apiResp ForecastAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// GetActiveAlerts fetches the active alerts for the URL built by
// ActiveAlertsURL.
func (c *Client) GetActiveAlerts(ctx context.Context, url string) (*AlertAPIResponse, error) {
	c.logger.Debug("fetching NWS active alerts", "url", url)

	body, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}

	var apiResp AlertAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
