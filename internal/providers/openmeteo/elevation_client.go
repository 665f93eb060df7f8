package openmeteo

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

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=39.1178&longitude=-106.4452
const (
	DefaultElevationURL = "https://api.open-meteo.com/v1/elevation"
)

var ErrEmptyElevation = errors.New("elevation response has no values")

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewElevationClient creates a client. An empty baseURL uses the public API.
func NewElevationClient(baseURL string, logger *slog.Logger) *ElevationClient {
	if baseURL == "" {
		baseURL = DefaultElevationURL
	}
	return &ElevationClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-elevation-client"),
	}
}

// Name identifies the provider in logs
func (c *ElevationClient) Name() string {
	return "openmeteo"
}

func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (*ElevationAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
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
	var apiResp ElevationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ElevationMeters returns the ground elevation at the point
func (c *ElevationClient) ElevationMeters(ctx context.Context, latitude, longitude float64) (float64, error) {
	resp, err := c.GetElevation(ctx, latitude, longitude)
	if err != nil {
		return 0, err
	}
	if len(resp.Elevation) == 0 {
		return 0, ErrEmptyElevation
	}

	c.logger.Debug("fetched Open-Meteo elevation",
		"latitude", latitude,
		"longitude", longitude,
		"meters", resp.Elevation[0],
	)
	return resp.Elevation[0], nil
}
