package screen

import (
	"fmt"
	"time"

	"daycast/internal/forecast"
)

// ViewModel is the render-ready form of DisplayState
type ViewModel struct {
	City    string    `json:"city"`
	Loading bool      `json:"loading"`
	Status  Status    `json:"status"`
	Message string    `json:"message,omitempty"`
	Days    []DayCard `json:"days"`
}

// DayCard is one page of the horizontally paged forecast list
type DayCard struct {
	Temperature string `json:"temperature"`
	Weekday     string `json:"weekday"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    string `json:"humidity"`
}

var statusMessages = map[Status]string{
	StatusPermissionRequired: "Location permission is required to show the forecast.",
	StatusLocationError:      "Could not determine your location. Try again.",
	StatusForecastError:      "Could not load the forecast. Try again.",
}

// Render maps the display state to day cards. Dates are shown in loc.
func Render(state DisplayState, loc *time.Location) ViewModel {
	if loc == nil {
		loc = time.UTC
	}

	vm := ViewModel{
		City:    state.PlaceName,
		Status:  state.Status,
		Loading: state.Status == StatusLoading && len(state.Forecasts) == 0,
		Message: statusMessages[state.Status],
		Days:    make([]DayCard, 0, len(state.Forecasts)),
	}
	if vm.City == "" {
		vm.City = UnknownPlaceName
	}
	if state.Status == StatusReady && len(state.Forecasts) == 0 {
		vm.Message = "No forecast available."
	}

	for _, day := range state.Forecasts {
		vm.Days = append(vm.Days, renderDay(day, loc))
	}
	return vm
}

func renderDay(day forecast.DailyForecast, loc *time.Location) DayCard {
	t := time.Unix(day.Timestamp, 0).In(loc)
	description := day.RawCategory
	if description == "" {
		description = day.Category.String()
	}
	return DayCard{
		Temperature: fmt.Sprintf("%.1f", day.DayTemperature),
		Weekday:     t.Weekday().String(),
		Date:        t.Format("2006-01-02"),
		Description: description,
		Icon:        day.Category.Icon(),
		Humidity:    fmt.Sprintf("%d%%", day.HumidityPercent),
	}
}
