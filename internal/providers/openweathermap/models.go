package openweathermap

// OneCallAPIResponse is the subset of the One Call 2.5 payload the app reads.
// Daily is a pointer so a body without the field can be told apart from an
// empty forecast.
type OneCallAPIResponse struct {
	Lat            float64     `json:"lat"`
	Lon            float64     `json:"lon"`
	Timezone       string      `json:"timezone"`
	TimezoneOffset int         `json:"timezone_offset"`
	Daily          *[]DailyAPI `json:"daily"`
}

type DailyAPI struct {
	Dt      int64 `json:"dt"`
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
	Temp    struct {
		Day   float64 `json:"day"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
		Night float64 `json:"night"`
		Eve   float64 `json:"eve"`
		Morn  float64 `json:"morn"`
	} `json:"temp"`
	Pressure  int          `json:"pressure"`
	Humidity  int          `json:"humidity"`
	WindSpeed float64      `json:"wind_speed"`
	Weather   []WeatherAPI `json:"weather"`
	Clouds    int          `json:"clouds"`
	Pop       float64      `json:"pop"`
}

type WeatherAPI struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ErrorAPIResponse is returned by the API alongside non-200 statuses
type ErrorAPIResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
