package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("openweathermap api key is not configured")

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig
	Log            LogConfig
	OpenWeatherMap OpenWeatherMapConfig
	Location       LocationConfig
	Screen         ScreenConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int
	GinMode        string // debug, release, test
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenWeatherMapConfig holds the forecast provider settings
type OpenWeatherMapConfig struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
}

// LocationConfig selects where the device position comes from.
// Source is "static" or "ip".
type LocationConfig struct {
	Source           string
	Latitude         float64
	Longitude        float64
	PermissionDenied bool
	GeocoderURL      string
	GeoIPURL         string
	UserAgent        string
}

// ScreenConfig holds behaviour switches for the weather screen
type ScreenConfig struct {
	ContinueOnPermissionDenied bool
	MountTimeout               time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads configuration using the given viper instance
func LoadWith(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.daycast")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.allowedorigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openweathermap.baseurl", "https://api.openweathermap.org/data/2.5/onecall")
	v.SetDefault("openweathermap.requestspersecond", 1.0)
	v.SetDefault("openweathermap.burst", 1)
	v.SetDefault("openweathermap.timeout", 10*time.Second)
	v.SetDefault("location.source", "ip")
	v.SetDefault("location.geocoderurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("location.geoipurl", "http://ip-api.com/json/")
	v.SetDefault("location.useragent", "daycast/1.0")
	v.SetDefault("screen.continueonpermissiondenied", false)
	v.SetDefault("screen.mounttimeout", time.Duration(0))

	// Read from environment variables, e.g. DAYCAST_OPENWEATHERMAP_APIKEY
	v.SetEnvPrefix("DAYCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about
	_ = v.BindEnv("openweathermap.apikey")
	_ = v.BindEnv("location.latitude")
	_ = v.BindEnv("location.longitude")
	_ = v.BindEnv("location.permissiondenied")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenWeatherMap.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch strings.ToLower(c.Location.Source) {
	case "static", "ip":
	default:
		return fmt.Errorf("unknown location source %q", c.Location.Source)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
