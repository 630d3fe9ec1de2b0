package forecast

import (
	"time"

	"daycast/internal/types"
)

// DailyForecast is one day of the multi-day forecast
type DailyForecast struct {
	Timestamp       int64                 `json:"timestamp"` // epoch seconds
	DayTemperature  float64               `json:"dayTemperature"`
	Category        types.WeatherCategory `json:"category" swaggertype:"string" example:"Clouds"`
	RawCategory     string                `json:"rawCategory"`
	HumidityPercent int                   `json:"humidityPercent"`
}

// Time returns the forecast timestamp as a time.Time in UTC
func (d DailyForecast) Time() time.Time {
	return time.Unix(d.Timestamp, 0).UTC()
}
