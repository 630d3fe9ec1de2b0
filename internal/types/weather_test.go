package types

import (
	"testing"
)

func TestParseWeatherCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected WeatherCategory
	}{
		{"Clear", CategoryClear},
		{"Clouds", CategoryClouds},
		{"clouds", CategoryClouds},
		{"Rain", CategoryRain},
		{"Drizzle", CategoryDrizzle},
		{"Snow", CategorySnow},
		{"Thunderstorm", CategoryThunderstorm},
		{"Atmosphere", CategoryAtmosphere},
		{"Mist", CategoryAtmosphere},
		{"Tornado", CategoryAtmosphere},
		{" Snow ", CategorySnow},
		{"", CategoryUnknown},
		{"Meteors", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseWeatherCategory(tt.input)
			if result != tt.expected {
				t.Errorf("ParseWeatherCategory(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWeatherCategory_Icon(t *testing.T) {
	tests := []struct {
		category WeatherCategory
		expected string
	}{
		{CategoryClouds, "cloudy"},
		{CategoryClear, "day-sunny"},
		{CategoryAtmosphere, "cloudy-gusts"},
		{CategorySnow, "snow"},
		{CategoryRain, "rains"},
		{CategoryDrizzle, "rain"},
		{CategoryThunderstorm, "lightning"},
		{CategoryUnknown, DefaultIcon},
		{WeatherCategory(42), DefaultIcon},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			result := tt.category.Icon()
			if result != tt.expected {
				t.Errorf("%v.Icon() = %q, want %q", tt.category, result, tt.expected)
			}
		})
	}
}
