package config

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("LoadWith() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.OpenWeatherMap.BaseURL != "https://api.openweathermap.org/data/2.5/onecall" {
		t.Errorf("OpenWeatherMap.BaseURL = %q", cfg.OpenWeatherMap.BaseURL)
	}
	if cfg.OpenWeatherMap.Timeout != 10*time.Second {
		t.Errorf("OpenWeatherMap.Timeout = %v, want 10s", cfg.OpenWeatherMap.Timeout)
	}
	if cfg.Location.Source != "ip" {
		t.Errorf("Location.Source = %q, want ip", cfg.Location.Source)
	}
	if cfg.Screen.ContinueOnPermissionDenied {
		t.Error("Screen.ContinueOnPermissionDenied should default to false")
	}
	if cfg.Screen.MountTimeout != 0 {
		t.Errorf("Screen.MountTimeout = %v, want 0", cfg.Screen.MountTimeout)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DAYCAST_OPENWEATHERMAP_APIKEY", "secret")
	t.Setenv("DAYCAST_LOCATION_SOURCE", "static")
	t.Setenv("DAYCAST_LOCATION_LATITUDE", "37.5")
	t.Setenv("DAYCAST_LOCATION_LONGITUDE", "127.0")
	t.Setenv("DAYCAST_SERVER_PORT", "9090")

	cfg, err := LoadWith(viper.New())
	if err != nil {
		t.Fatalf("LoadWith() unexpected error = %v", err)
	}

	if cfg.OpenWeatherMap.APIKey != "secret" {
		t.Errorf("OpenWeatherMap.APIKey = %q, want secret", cfg.OpenWeatherMap.APIKey)
	}
	if cfg.Location.Source != "static" {
		t.Errorf("Location.Source = %q, want static", cfg.Location.Source)
	}
	if cfg.Location.Latitude != 37.5 || cfg.Location.Longitude != 127.0 {
		t.Errorf("Location = (%v, %v), want (37.5, 127.0)", cfg.Location.Latitude, cfg.Location.Longitude)
	}
	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", cfg.GetServerAddr())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     error
		errContains string
	}{
		{
			name: "valid",
			cfg: Config{
				OpenWeatherMap: OpenWeatherMapConfig{APIKey: "key"},
				Location:       LocationConfig{Source: "static"},
			},
		},
		{
			name:    "missing api key",
			cfg:     Config{Location: LocationConfig{Source: "ip"}},
			wantErr: ErrMissingAPIKey,
		},
		{
			name: "unknown source",
			cfg: Config{
				OpenWeatherMap: OpenWeatherMapConfig{APIKey: "key"},
				Location:       LocationConfig{Source: "gps"},
			},
			errContains: "unknown location source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
			case tt.errContains != "":
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
			default:
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		debugShown bool
		contains   string
	}{
		{"debug text", "debug", "text", true, "msg=hello"},
		{"info json", "info", "json", false, `"msg":"hello"`},
		{"unknown level defaults to info", "loud", "text", false, "msg=hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			var buf bytes.Buffer
			logger := cfg.newLogger(&buf)

			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debugShown {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugShown)
			}

			logger.Info("hello")
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("log output %q does not contain %q", buf.String(), tt.contains)
			}
		})
	}
}
