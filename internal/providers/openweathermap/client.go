package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://openweathermap.org/api/one-call-api
// Sample request: https://api.openweathermap.org/data/2.5/onecall?lat=37.5&lon=127&exclude=alerts&appid=KEY&units=metric
const (
	baseURL = "https://api.openweathermap.org/data/2.5/onecall"
)

var (
	// ErrRequest covers transport failures where no response was received
	ErrRequest = errors.New("openweathermap request failed")
	// ErrDecode covers error responses and bodies that are not a One Call payload
	ErrDecode = errors.New("openweathermap response could not be decoded")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint, e.g. a test server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "openweathermap-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOneCall fetches the One Call forecast for the given coordinates in metric units, without alerts
func (c *Client) GetOneCall(ctx context.Context, latitude, longitude float64) (*OneCallAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("exclude", "alerts")
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching OpenWeatherMap one call forecast",
		"latitude", latitude,
		"longitude", longitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch one call forecast", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		message := string(body)
		var apiErr ErrorAPIResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			message = apiErr.Message
		}
		c.logger.Error("OpenWeatherMap API returned error",
			"status_code", resp.StatusCode,
			"message", message,
		)
		// An error body is not a forecast
		return nil, fmt.Errorf("%w: status %d: %s", ErrDecode, resp.StatusCode, message)
	}

	var apiResp OneCallAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode one call response", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if apiResp.Daily == nil {
		return nil, fmt.Errorf("%w: response has no daily field", ErrDecode)
	}

	c.logger.Debug("successfully fetched one call forecast", "days", len(*apiResp.Daily))

	return &apiResp, nil
}
