package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"daycast/internal/alarm"
	"daycast/internal/config"
	"daycast/internal/forecast"
	"daycast/internal/location"
	"daycast/internal/metrics"
	"daycast/internal/providers/ipapi"
	"daycast/internal/providers/openstreetmap"
	"daycast/internal/providers/openweathermap"
	"daycast/internal/screen"
	"daycast/internal/timezone"
	"daycast/internal/types"
)

// newScreen builds the screen and its collaborators from configuration
func newScreen(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*screen.Screen, error) {
	var source location.PositionSource
	switch strings.ToLower(cfg.Location.Source) {
	case "static":
		source = location.StaticSource{
			Coords: types.NewCoords(cfg.Location.Latitude, cfg.Location.Longitude),
			Denied: cfg.Location.PermissionDenied,
		}
	case "ip":
		source = location.NewIPSource(ipapi.NewClientWithURL(cfg.Location.GeoIPURL, logger))
	default:
		return nil, fmt.Errorf("unknown location source %q", cfg.Location.Source)
	}

	geocoder := location.NewNominatimGeocoder(
		openstreetmap.NewClientWithURL(cfg.Location.GeocoderURL, cfg.Location.UserAgent, logger),
	)
	resolver := location.NewResolver(source, geocoder, location.Options{
		ContinueOnPermissionDenied: cfg.Screen.ContinueOnPermissionDenied,
	}, logger)

	owm := openweathermap.NewClient(cfg.OpenWeatherMap.APIKey, logger,
		openweathermap.WithBaseURL(cfg.OpenWeatherMap.BaseURL),
		openweathermap.WithTimeout(cfg.OpenWeatherMap.Timeout),
	)
	provider := forecast.NewRateLimitedProvider(owm, cfg.OpenWeatherMap.RequestsPerSecond, cfg.OpenWeatherMap.Burst)
	fetcher := forecast.NewFetcher(provider, m, logger)

	tz, err := timezone.NewService()
	if err != nil {
		// Dates fall back to UTC
		logger.Warn("timezone lookup unavailable", "error", err)
	}

	return screen.NewScreen(screen.Dependencies{
		Resolver: resolver,
		Fetcher:  fetcher,
		Timezone: tz,
		Metrics:  m,
		Notifier: logNotifier(logger),
	}, screen.Options{
		MountTimeout: cfg.Screen.MountTimeout,
		OnChange: func(d screen.DisplayState) {
			logger.Debug("screen state changed",
				"status", d.Status,
				"place", d.PlaceName,
				"days", len(d.Forecasts),
			)
		},
	}, logger), nil
}

// logNotifier is the alert shown when the alarm fires
func logNotifier(logger *slog.Logger) alarm.Notifier {
	return alarm.NotifierFunc(func(ctx context.Context, a alarm.Alarm) {
		logger.Warn("ALARM", "id", a.ID, "target", a.Target, "firedAt", a.FiredAt)
	})
}
