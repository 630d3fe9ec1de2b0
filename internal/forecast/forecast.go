package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"daycast/internal/metrics"
	"daycast/internal/providers/openweathermap"
	"daycast/internal/types"
)

var (
	ErrNetwork = errors.New("forecast request failed")
	ErrDecode  = errors.New("forecast response could not be decoded")
)

// Provider fetches the raw One Call payload
type Provider interface {
	GetOneCall(ctx context.Context, latitude, longitude float64) (*openweathermap.OneCallAPIResponse, error)
}

// Service retrieves the ordered daily forecast for a point
type Service interface {
	Fetch(ctx context.Context, coords types.Coords) ([]DailyForecast, error)
}

type fetcher struct {
	provider Provider
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewFetcher creates a forecast service backed by provider.
// m may be nil.
func NewFetcher(provider Provider, m *metrics.Metrics, logger *slog.Logger) Service {
	return &fetcher{
		provider: provider,
		metrics:  m,
		logger:   logger.With("component", "forecast-fetcher"),
	}
}

// Fetch issues exactly one provider request. There is no retry and no cache.
func (f *fetcher) Fetch(ctx context.Context, coords types.Coords) ([]DailyForecast, error) {
	apiResp, err := f.provider.GetOneCall(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		f.logger.Error("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		if errors.Is(err, openweathermap.ErrDecode) {
			f.metrics.ObserveFetch("decode", 0)
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		f.metrics.ObserveFetch("network", 0)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	days, err := mapDaily(apiResp)
	if err != nil {
		f.metrics.ObserveFetch("decode", 0)
		return nil, err
	}

	f.metrics.ObserveFetch("ok", len(days))
	f.logger.Debug("fetched forecast", "days", len(days), "timezone", apiResp.Timezone)

	return days, nil
}

// mapDaily converts the daily section into domain records, keeping server order
func mapDaily(apiResp *openweathermap.OneCallAPIResponse) ([]DailyForecast, error) {
	if apiResp == nil || apiResp.Daily == nil {
		return nil, fmt.Errorf("%w: response has no daily field", ErrDecode)
	}

	daily := *apiResp.Daily
	days := make([]DailyForecast, 0, len(daily))
	for _, d := range daily {
		raw := ""
		if len(d.Weather) > 0 {
			raw = d.Weather[0].Main
		}
		days = append(days, DailyForecast{
			Timestamp:       d.Dt,
			DayTemperature:  d.Temp.Day,
			Category:        types.ParseWeatherCategory(raw),
			RawCategory:     raw,
			HumidityPercent: d.Humidity,
		})
	}

	return days, nil
}
