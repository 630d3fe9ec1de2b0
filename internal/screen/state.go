package screen

import (
	"slices"

	"daycast/internal/forecast"
)

// Status is the phase of the weather screen
type Status string

const (
	StatusLoading            Status = "loading"
	StatusPermissionRequired Status = "permission_required"
	StatusLocationError      Status = "location_error"
	StatusForecastError      Status = "forecast_error"
	StatusReady              Status = "ready"
)

const (
	LoadingPlaceName = "Loading..."
	UnknownPlaceName = "Unknown location"
)

// DisplayState is everything the rendering layer needs to draw the screen.
// Forecasts is either empty or the complete ordered forecast.
type DisplayState struct {
	PlaceName         string                   `json:"placeName"`
	Forecasts         []forecast.DailyForecast `json:"forecasts"`
	PermissionGranted bool                     `json:"permissionGranted"`
	Status            Status                   `json:"status"`
	Error             string                   `json:"error,omitempty"`
	Timezone          string                   `json:"timezone,omitempty"`
}

// NewDisplayState returns the state shown before anything has loaded
func NewDisplayState() DisplayState {
	return DisplayState{
		PlaceName:         LoadingPlaceName,
		Forecasts:         []forecast.DailyForecast{},
		PermissionGranted: true,
		Status:            StatusLoading,
	}
}

// clone copies the state so callers cannot alias the forecast slice
func (d DisplayState) clone() DisplayState {
	d.Forecasts = slices.Clone(d.Forecasts)
	if d.Forecasts == nil {
		d.Forecasts = []forecast.DailyForecast{}
	}
	return d
}
