package widget

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-search/internal/weather"
)

// iconURLFormat is the AccuWeather icon path; the code is zero-padded to two digits.
const iconURLFormat = "https://developer.accuweather.com/sites/default/files/%02d-s.png"

// forecastDateLayout renders e.g. "Wed, May 1".
const forecastDateLayout = "Mon, Jan 2"

// Status is the display state of the widget. Exactly one applies at a time.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusResultShown
	StatusErrorShown
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusResultShown:
		return "result"
	case StatusErrorShown:
		return "error"
	default:
		return "unknown"
	}
}

// State is everything a renderer needs to draw the widget.
type State struct {
	// Input is the content of the search field.
	Input  string
	Status Status

	// Error is shown only in StatusErrorShown.
	Error string

	// Weather is non-nil only in StatusResultShown.
	Weather *Panel
}

// Loading reports whether the loading indicator is visible.
func (s State) Loading() bool { return s.Status == StatusLoading }

// Panel holds the formatted display fields for one report.
type Panel struct {
	// Background is the photo URL; empty clears the background.
	Background string
	// Credit is nil when there is no photo to attribute.
	Credit *PhotoCredit

	LocationName   string
	LocationRegion string
	Temperature    string
	Description    string
	IconURL        string
	IconAlt        string

	RealFeel      string
	Humidity      string
	WindSpeed     string
	WindDirection string
	Pressure      string
	UVIndex       string
	Visibility    string

	Forecast []ForecastCard
}

// PhotoCredit attributes the background photo.
type PhotoCredit struct {
	Photographer string
	ProfileURL   string
}

// ForecastCard is one forecast day as displayed.
type ForecastCard struct {
	Date        string
	IconURL     string
	IconAlt     string
	High        string
	Low         string
	Description string
}

// Render formats a report into display fields. It has no side effects.
func Render(r weather.Report) Panel {
	cur := r.CurrentWeather

	p := Panel{
		LocationName:   r.Location.Name,
		LocationRegion: fmt.Sprintf("%s, %s", r.Location.Region, r.Location.Country),
		Temperature:    fmt.Sprintf("%d°C", roundHalfUp(cur.Temperature)),
		Description:    cur.WeatherText,
		IconURL:        IconURL(cur.WeatherIcon),
		IconAlt:        cur.WeatherText,

		RealFeel:      fmt.Sprintf("%d°C", roundHalfUp(cur.RealFeel)),
		Humidity:      fmt.Sprintf("%d%%", cur.Humidity),
		WindSpeed:     formatNumber(cur.WindSpeed) + " km/h",
		WindDirection: cur.WindDirection,
		Pressure:      formatNumber(cur.Pressure) + " hPa",
		UVIndex:       strconv.Itoa(cur.UVIndex),
		Visibility:    formatNumber(cur.Visibility) + " km",

		Forecast: make([]ForecastCard, 0, len(r.Forecast)),
	}

	if img := r.BackgroundImage; img != nil && img.URL != "" {
		p.Background = img.URL
		p.Credit = &PhotoCredit{
			Photographer: img.Photographer,
			ProfileURL:   referralURL(img.PhotographerURL),
		}
	}

	for _, day := range r.Forecast {
		p.Forecast = append(p.Forecast, ForecastCard{
			Date:        day.Date.Format(forecastDateLayout),
			IconURL:     IconURL(day.DayIcon),
			IconAlt:     day.DayText,
			High:        fmt.Sprintf("%d°", roundHalfUp(day.MaxTemp)),
			Low:         fmt.Sprintf("%d°", roundHalfUp(day.MinTemp)),
			Description: day.DayText,
		})
	}

	return p
}

// IconURL maps a weather icon code to its image URL. Unknown codes still get a URL.
func IconURL(code int) string {
	return fmt.Sprintf(iconURLFormat, code)
}

// roundHalfUp rounds to the nearest integer, halves towards +Inf (-2.5 -> -2).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// formatNumber prints v with the shortest exact representation (10 -> "10", 11.1 -> "11.1").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// referralURL tags the photographer profile link as the photo provider requires.
func referralURL(profile string) string {
	u, err := url.Parse(profile)
	if err != nil || profile == "" {
		return profile
	}
	q := u.Query()
	q.Set("utm_source", "weather_app")
	q.Set("utm_medium", "referral")
	u.RawQuery = q.Encode()
	return u.String()
}
