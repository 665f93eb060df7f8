package usgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://epqs.nationalmap.gov/v1/docs
// Sample request: https://epqs.nationalmap.gov/v1/json?x=-107.65840&y=39.0639&units=Meters
const (
	DefaultBaseURL = "https://epqs.nationalmap.gov/v1/json"
)

// ErrNoData is returned for points the national elevation dataset does not cover
var ErrNoData = errors.New("no USGS elevation data at point")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an EPQS client. An empty baseURL uses the public service.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "usgs-client"),
	}
}

// Name identifies the provider in logs
func (c *Client) Name() string {
	return "usgs"
}

func (c *Client) GetElevationPoint(ctx context.Context, latitude, longitude float64) (*ElevationPointAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("y", fmt.Sprintf("%f", latitude))
	q.Set("x", fmt.Sprintf("%f", longitude))
	q.Set("units", "Meters")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ElevationPointAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ElevationMeters returns the ground elevation at the point
func (c *Client) ElevationMeters(ctx context.Context, latitude, longitude float64) (float64, error) {
	resp, err := c.GetElevationPoint(ctx, latitude, longitude)
	if err != nil {
		return 0, err
	}

	meters, err := resp.Value.Float64()
	if err != nil {
		return 0, fmt.Errorf("failed to parse elevation %q: %w", resp.Value, err)
	}
	if meters <= noDataValue {
		return 0, ErrNoData
	}

	c.logger.Debug("fetched USGS elevation",
		"latitude", latitude,
		"longitude", longitude,
		"meters", meters,
	)
	return meters, nil
}
