package types

import "strings"

// WeatherCategory is the coarse OpenWeatherMap condition group ("main" field)
type WeatherCategory int

const (
	CategoryUnknown WeatherCategory = iota
	CategoryClear
	CategoryClouds
	CategoryRain
	CategoryDrizzle
	CategorySnow
	CategoryThunderstorm
	CategoryAtmosphere
)

// DefaultIcon is rendered for categories without an entry in the icon table
const DefaultIcon = "cloudy"

var categoryNames = map[WeatherCategory]string{
	CategoryClear:        "Clear",
	CategoryClouds:       "Clouds",
	CategoryRain:         "Rain",
	CategoryDrizzle:      "Drizzle",
	CategorySnow:         "Snow",
	CategoryThunderstorm: "Thunderstorm",
	CategoryAtmosphere:   "Atmosphere",
}

// categoryIcons maps categories to Fontisto icon names
var categoryIcons = map[WeatherCategory]string{
	CategoryClouds:       "cloudy",
	CategoryClear:        "day-sunny",
	CategoryAtmosphere:   "cloudy-gusts",
	CategorySnow:         "snow",
	CategoryRain:         "rains",
	CategoryDrizzle:      "rain",
	CategoryThunderstorm: "lightning",
}

// atmosphereGroup lists the "main" values OpenWeatherMap reports for the 7xx
// condition codes. They all render as Atmosphere.
var atmosphereGroup = map[string]bool{
	"mist":    true,
	"smoke":   true,
	"haze":    true,
	"dust":    true,
	"fog":     true,
	"sand":    true,
	"ash":     true,
	"squall":  true,
	"tornado": true,
}

// ParseWeatherCategory maps a provider category string to a WeatherCategory
func ParseWeatherCategory(s string) WeatherCategory {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for category, name := range categoryNames {
		if strings.ToLower(name) == normalized {
			return category
		}
	}
	if atmosphereGroup[normalized] {
		return CategoryAtmosphere
	}
	return CategoryUnknown
}

func (c WeatherCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Icon returns the icon name used by the day card for this category
func (c WeatherCategory) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return DefaultIcon
}

func (c WeatherCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *WeatherCategory) UnmarshalText(text []byte) error {
	*c = ParseWeatherCategory(string(text))
	return nil
}
