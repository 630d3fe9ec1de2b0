package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"daycast/internal/config"
	"daycast/internal/forecast"
	"daycast/internal/location"
	"daycast/internal/metrics"
	"daycast/internal/screen"
	"daycast/internal/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	resolution *location.Resolution
	err        error
}

func (s *stubResolver) Resolve(ctx context.Context) (*location.Resolution, error) {
	return s.resolution, s.err
}

type stubFetcher struct {
	days    []forecast.DailyForecast
	err     error
	block   chan struct{}
	started chan struct{}
}

func (s *stubFetcher) Fetch(ctx context.Context, coords types.Coords) ([]forecast.DailyForecast, error) {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	return s.days, s.err
}

func seoulResolver() *stubResolver {
	return &stubResolver{resolution: &location.Resolution{
		Coordinates:       types.NewCoords(37.5, 127.0),
		PlaceName:         "Seoul",
		HasPlaceName:      true,
		PermissionGranted: true,
	}}
}

func seoulFetcher() *stubFetcher {
	return &stubFetcher{days: []forecast.DailyForecast{
		{Timestamp: 1718409600, DayTemperature: 21.7, Category: types.CategoryClouds, RawCategory: "Clouds", HumidityPercent: 60},
	}}
}

func newTestApp(t *testing.T, resolver location.Service, fetcher forecast.Service) (*App, *screen.Screen) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	scr := screen.NewScreen(screen.Dependencies{
		Resolver: resolver,
		Fetcher:  fetcher,
		Metrics:  metrics.New(registry),
	}, screen.Options{}, logger)
	t.Cleanup(scr.Teardown)

	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test", AllowedOrigins: []string{"*"}}}
	return NewApp(cfg, scr, registry, logger), scr
}

func doRequest(app *App, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&v))
	return v
}

func TestHandlePing(t *testing.T) {
	app, _ := newTestApp(t, seoulResolver(), seoulFetcher())

	w := doRequest(app, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode[PingResponse](t, w).Message)
}

func TestHandleGetScreen(t *testing.T) {
	app, scr := newTestApp(t, seoulResolver(), seoulFetcher())

	vm := decode[screen.ViewModel](t, doRequest(app, http.MethodGet, "/screen", ""))
	assert.True(t, vm.Loading)
	assert.Equal(t, screen.LoadingPlaceName, vm.City)

	require.NoError(t, scr.Mount(context.Background()))

	w := doRequest(app, http.MethodGet, "/screen", "")
	require.Equal(t, http.StatusOK, w.Code)
	vm = decode[screen.ViewModel](t, w)
	assert.False(t, vm.Loading)
	assert.Equal(t, "Seoul", vm.City)
	require.Len(t, vm.Days, 1)
	assert.Equal(t, "21.7", vm.Days[0].Temperature)
	assert.Equal(t, "60%", vm.Days[0].Humidity)
	assert.Equal(t, "cloudy", vm.Days[0].Icon)
}

func TestHandleGetScreenState(t *testing.T) {
	app, scr := newTestApp(t, seoulResolver(), seoulFetcher())
	require.NoError(t, scr.Mount(context.Background()))
	scr.Toggle()

	w := doRequest(app, http.MethodGet, "/screen/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	state := decode[ScreenStateResponse](t, w)
	assert.Equal(t, screen.StatusReady, state.Display.Status)
	assert.Equal(t, "Seoul", state.Display.PlaceName)
	assert.Len(t, state.Display.Forecasts, 1)
	assert.True(t, state.Toggled)
	assert.False(t, state.Alarm.Armed)
}

func TestHandleRetry(t *testing.T) {
	resolver := &stubResolver{err: location.ErrPermissionDenied, resolution: &location.Resolution{}}
	app, scr := newTestApp(t, resolver, seoulFetcher())

	require.Error(t, scr.Mount(context.Background()))
	vm := decode[screen.ViewModel](t, doRequest(app, http.MethodGet, "/screen", ""))
	assert.Equal(t, screen.StatusPermissionRequired, vm.Status)
	assert.NotEmpty(t, vm.Message)

	*resolver = *seoulResolver()

	w := doRequest(app, http.MethodPost, "/screen/retry", "")
	require.Equal(t, http.StatusOK, w.Code)
	vm = decode[screen.ViewModel](t, w)
	assert.Equal(t, screen.StatusReady, vm.Status)
	assert.Len(t, vm.Days, 1)
}

func TestHandleRetry_FailureIsReportedInStatus(t *testing.T) {
	app, _ := newTestApp(t, seoulResolver(), &stubFetcher{err: forecast.ErrNetwork})

	w := doRequest(app, http.MethodPost, "/screen/retry", "")

	require.Equal(t, http.StatusOK, w.Code)
	vm := decode[screen.ViewModel](t, w)
	assert.Equal(t, screen.StatusForecastError, vm.Status)
	assert.Equal(t, "Seoul", vm.City)
	assert.Empty(t, vm.Days)
}

func TestHandleRetry_WhileLoading(t *testing.T) {
	fetcher := seoulFetcher()
	fetcher.block = make(chan struct{})
	fetcher.started = make(chan struct{}, 1)
	app, scr := newTestApp(t, seoulResolver(), fetcher)

	done := make(chan error, 1)
	go func() { done <- scr.Mount(context.Background()) }()
	<-fetcher.started

	w := doRequest(app, http.MethodPost, "/screen/retry", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotEmpty(t, decode[ErrorResponse](t, w).Error)

	close(fetcher.block)
	require.NoError(t, <-done)
}

func TestHandleToggle(t *testing.T) {
	app, _ := newTestApp(t, seoulResolver(), seoulFetcher())

	assert.True(t, decode[ToggleResponse](t, doRequest(app, http.MethodPost, "/screen/toggle", "")).Toggled)
	assert.False(t, decode[ToggleResponse](t, doRequest(app, http.MethodPost, "/screen/toggle", "")).Toggled)
}

func TestHandleArmAlarm(t *testing.T) {
	at := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		validate   func(*testing.T, screen.AlarmState)
	}{
		{
			name:       "wall clock time",
			body:       `{"time":"07:30"}`,
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, s screen.AlarmState) {
				require.NotNil(t, s.TargetTime)
				assert.True(t, s.Armed)
				assert.Equal(t, 7, s.TargetTime.UTC().Hour())
				assert.Equal(t, 30, s.TargetTime.UTC().Minute())
				assert.True(t, s.TargetTime.After(time.Now()))
			},
		},
		{
			name:       "absolute instant",
			body:       `{"at":"` + at.Format(time.RFC3339) + `"}`,
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, s screen.AlarmState) {
				require.NotNil(t, s.TargetTime)
				assert.True(t, at.Equal(*s.TargetTime))
				assert.NotEmpty(t, s.ID)
			},
		},
		{name: "invalid time", body: `{"time":"noon-ish"}`, wantStatus: http.StatusBadRequest},
		{name: "both set", body: `{"time":"07:30","at":"` + at.Format(time.RFC3339) + `"}`, wantStatus: http.StatusBadRequest},
		{name: "neither set", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"time":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, seoulResolver(), seoulFetcher())

			w := doRequest(app, http.MethodPost, "/alarm", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.validate != nil {
				tt.validate(t, decode[screen.AlarmState](t, w))
			} else {
				assert.NotEmpty(t, decode[ErrorResponse](t, w).Error)
			}
		})
	}
}

func TestHandleAlarmLifecycle(t *testing.T) {
	app, scr := newTestApp(t, seoulResolver(), seoulFetcher())

	first := decode[screen.AlarmState](t, doRequest(app, http.MethodPost, "/alarm", `{"time":"07:30"}`))
	second := decode[screen.AlarmState](t, doRequest(app, http.MethodPost, "/alarm", `{"time":"08:00"}`))
	assert.NotEqual(t, first.ID, second.ID)

	got := decode[screen.AlarmState](t, doRequest(app, http.MethodGet, "/alarm", ""))
	assert.True(t, got.Armed)
	assert.Equal(t, second.ID, got.ID)

	assert.True(t, decode[DisarmResponse](t, doRequest(app, http.MethodDelete, "/alarm", "")).Disarmed)
	assert.False(t, decode[DisarmResponse](t, doRequest(app, http.MethodDelete, "/alarm", "")).Disarmed)
	assert.False(t, scr.Alarm().Armed)

	scr.Teardown()
	w := doRequest(app, http.MethodPost, "/alarm", `{"time":"07:30"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleMetrics(t *testing.T) {
	app, scr := newTestApp(t, seoulResolver(), seoulFetcher())
	require.NoError(t, scr.Mount(context.Background()))

	w := doRequest(app, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `daycast_screen_mounts_total{status="ready"} 1`)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "any origin",
			allowed:    []string{"*"},
			origin:     "http://ui.local",
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "listed origin",
			allowed:    []string{"http://ui.local"},
			origin:     "http://ui.local",
			wantStatus: http.StatusOK,
			wantOrigin: "http://ui.local",
		},
		{
			name:       "unlisted origin",
			allowed:    []string{"http://ui.local"},
			origin:     "http://elsewhere.local",
			wantStatus: http.StatusForbidden,
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			registry := prometheus.NewRegistry()
			scr := screen.NewScreen(screen.Dependencies{
				Resolver: seoulResolver(),
				Fetcher:  seoulFetcher(),
			}, screen.Options{}, logger)
			t.Cleanup(scr.Teardown)

			cfg := &config.Config{Server: config.ServerConfig{GinMode: "test", AllowedOrigins: tt.allowed}}
			app := NewApp(cfg, scr, registry, logger)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			app.router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestHandleRetry_AfterTeardown(t *testing.T) {
	app, scr := newTestApp(t, seoulResolver(), seoulFetcher())
	require.NoError(t, scr.Mount(context.Background()))
	scr.Teardown()

	w := doRequest(app, http.MethodPost, "/screen/retry", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	vm := decode[screen.ViewModel](t, doRequest(app, http.MethodGet, "/screen", ""))
	assert.Equal(t, screen.StatusReady, vm.Status)
	assert.Equal(t, "Seoul", vm.City)
}
