package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/i474232898/weather-search/internal/weather"
)

const (
	DefaultAccuWeatherBaseURL = "http://dataservice.accuweather.com"

	locationSearchPath = "/locations/v1/cities/search"
	currentWeatherPath = "/currentconditions/v1/"
	forecastPath       = "/forecasts/v1/daily/5day/"
)

// AccuWeatherProvider implements the weather.Provider interface for AccuWeather.
type AccuWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
}

func NewAccuWeatherProvider(client *http.Client, baseURL, apiKey string) *AccuWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultAccuWeatherBaseURL
	}

	return &AccuWeatherProvider{
		name:    "accuweather",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Circuit: newCircuit("accuweather"),
		},
	}
}

func (p *AccuWeatherProvider) Name() string {
	return p.name
}

func (p *AccuWeatherProvider) newRequest(path string, values url.Values) (*http.Request, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("accuweather api key is not configured")
	}
	values.Set("apikey", p.apiKey)
	values.Set("language", "en-us")

	u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
	return http.NewRequest(http.MethodGet, u, nil)
}

// FindLocation returns the first city matching the query.
func (p *AccuWeatherProvider) FindLocation(ctx context.Context, city string) (*weather.Location, error) {
	values := url.Values{}
	values.Set("q", city)

	req, err := p.newRequest(locationSearchPath, values)
	if err != nil {
		return nil, err
	}

	var payload []struct {
		Key           string `json:"Key"`
		LocalizedName string `json:"LocalizedName"`
		Country       struct {
			LocalizedName string `json:"LocalizedName"`
		} `json:"Country"`
		Region struct {
			LocalizedName string `json:"LocalizedName"`
		} `json:"Region"`
	}
	if err := getJSON(ctx, p.httpCfg, req, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}

	first := payload[0]
	return &weather.Location{
		Key:     first.Key,
		Name:    first.LocalizedName,
		Country: first.Country.LocalizedName,
		Region:  first.Region.LocalizedName,
	}, nil
}

type metricValue struct {
	Metric struct {
		Value float64 `json:"Value"`
	} `json:"Metric"`
}

// CurrentConditions returns the detailed current conditions for a location key.
func (p *AccuWeatherProvider) CurrentConditions(ctx context.Context, locationKey string) (weather.CurrentWeather, error) {
	values := url.Values{}
	values.Set("details", "true")

	req, err := p.newRequest(currentWeatherPath+url.PathEscape(locationKey), values)
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	var payload []struct {
		WeatherText         string      `json:"WeatherText"`
		WeatherIcon         int         `json:"WeatherIcon"`
		IsDayTime           bool        `json:"IsDayTime"`
		Temperature         metricValue `json:"Temperature"`
		RealFeelTemperature metricValue `json:"RealFeelTemperature"`
		RelativeHumidity    int         `json:"RelativeHumidity"`
		Wind                struct {
			Direction struct {
				Localized string `json:"Localized"`
			} `json:"Direction"`
			Speed metricValue `json:"Speed"`
		} `json:"Wind"`
		Pressure   metricValue `json:"Pressure"`
		UVIndex    int         `json:"UVIndex"`
		Visibility metricValue `json:"Visibility"`
	}
	if err := getJSON(ctx, p.httpCfg, req, &payload); err != nil {
		return weather.CurrentWeather{}, err
	}
	if len(payload) == 0 {
		return weather.CurrentWeather{}, fmt.Errorf("accuweather returned no current conditions for %s", locationKey)
	}

	c := payload[0]
	return weather.CurrentWeather{
		Temperature:   c.Temperature.Metric.Value,
		RealFeel:      c.RealFeelTemperature.Metric.Value,
		WeatherText:   c.WeatherText,
		WeatherIcon:   c.WeatherIcon,
		IsDay:         c.IsDayTime,
		Humidity:      c.RelativeHumidity,
		WindSpeed:     c.Wind.Speed.Metric.Value,
		WindDirection: c.Wind.Direction.Localized,
		Pressure:      c.Pressure.Metric.Value,
		UVIndex:       c.UVIndex,
		Visibility:    c.Visibility.Metric.Value,
	}, nil
}

// DailyForecast returns the 5-day forecast in metric units.
func (p *AccuWeatherProvider) DailyForecast(ctx context.Context, locationKey string) ([]weather.ForecastDay, error) {
	values := url.Values{}
	values.Set("metric", "true")

	req, err := p.newRequest(forecastPath+url.PathEscape(locationKey), values)
	if err != nil {
		return nil, err
	}

	type phrase struct {
		Icon       int    `json:"Icon"`
		IconPhrase string `json:"IconPhrase"`
	}
	var payload struct {
		DailyForecasts []struct {
			Date        time.Time `json:"Date"`
			Temperature struct {
				Minimum struct {
					Value float64 `json:"Value"`
				} `json:"Minimum"`
				Maximum struct {
					Value float64 `json:"Value"`
				} `json:"Maximum"`
			} `json:"Temperature"`
			Day   phrase `json:"Day"`
			Night phrase `json:"Night"`
		} `json:"DailyForecasts"`
	}
	if err := getJSON(ctx, p.httpCfg, req, &payload); err != nil {
		return nil, err
	}

	forecast := make([]weather.ForecastDay, 0, len(payload.DailyForecasts))
	for _, day := range payload.DailyForecasts {
		forecast = append(forecast, weather.ForecastDay{
			Date:      day.Date,
			MinTemp:   day.Temperature.Minimum.Value,
			MaxTemp:   day.Temperature.Maximum.Value,
			DayIcon:   day.Day.Icon,
			DayText:   day.Day.IconPhrase,
			NightIcon: day.Night.Icon,
			NightText: day.Night.IconPhrase,
		})
	}
	return forecast, nil
}

var _ weather.Provider = (*AccuWeatherProvider)(nil)
