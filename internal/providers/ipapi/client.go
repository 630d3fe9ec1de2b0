package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json/
const (
	baseURL = "http://ip-api.com/json/"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(baseURL, logger)
}

func NewClientWithURL(u string, logger *slog.Logger) *Client {
	if u == "" {
		u = baseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: u,
		logger:  logger.With("component", "ipapi-client"),
	}
}

// Lookup geolocates the caller's public IP address
func (c *Client) Lookup(ctx context.Context) (*LookupAPIResponse, error) {
	c.logger.Debug("fetching IP geolocation", "url", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch IP geolocation", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", apiResp.Message)
	}

	c.logger.Debug("successfully fetched IP geolocation",
		"latitude", apiResp.Lat,
		"longitude", apiResp.Lon,
		"city", apiResp.City,
	)

	return &apiResp, nil
}
