package weather

import (
	"strings"
	"time"
)

// Location identifies a resolved place as returned by the location search.
type Location struct {
	Key     string `json:"key,omitempty"`
	Name    string `json:"name" validate:"required"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// CurrentWeather holds the current conditions for a location, in metric units.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	RealFeel      float64 `json:"real_feel"`
	WeatherText   string  `json:"weather_text" validate:"required"`
	WeatherIcon   int     `json:"weather_icon"`
	IsDay         bool    `json:"is_day"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	Pressure      float64 `json:"pressure"`
	UVIndex       int     `json:"uv_index"`
	Visibility    float64 `json:"visibility"`
}

// ForecastDay is one day of the daily forecast.
type ForecastDay struct {
	Date      time.Time `json:"date"`
	MinTemp   float64   `json:"min_temp"`
	MaxTemp   float64   `json:"max_temp"`
	DayIcon   int       `json:"day_icon"`
	DayText   string    `json:"day_text"`
	NightIcon int       `json:"night_icon"`
	NightText string    `json:"night_text"`
}

// BackgroundImage is a decorative photo of the city with its attribution.
type BackgroundImage struct {
	URL             string `json:"url"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url"`
}

// Report is the body of a successful POST /weather response.
// Forecast entries are ordered by date ascending. The validate tags describe
// the minimum a client needs to render a report.
type Report struct {
	Location        Location         `json:"location" validate:"required"`
	CurrentWeather  CurrentWeather   `json:"current_weather" validate:"required"`
	Forecast        []ForecastDay    `json:"forecast" validate:"required"`
	BackgroundImage *BackgroundImage `json:"background_image,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
}

// CityKey returns the canonical key used to index lookups for a city query.
func CityKey(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}
