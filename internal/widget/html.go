package widget

import (
	"html/template"
	"io"
)

// page is built from structured fields only; html/template escapes every
// value for its context (text, attribute, URL, CSS).
var page = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Weather</title></head>
<body>
<div class="weather-app"{{with .Weather}}{{if .Background}} style="background-image: url('{{.Background}}')"{{end}}{{end}}>
<div class="container">
  <input id="searchInput" type="text" value="{{.Input}}" placeholder="Enter city name">
  {{if .Loading}}<div id="loading">Loading...</div>{{end}}
  {{if .Error}}<div id="errorMessage">{{.Error}}</div>{{end}}
  {{with .Weather}}
  <div id="weatherDisplay">
    <h2 id="locationName">{{.LocationName}}</h2>
    <p id="locationRegion">{{.LocationRegion}}</p>
    <img id="weatherIcon" src="{{.IconURL}}" alt="{{.IconAlt}}">
    <div id="temperature">{{.Temperature}}</div>
    <div id="weatherDescription">{{.Description}}</div>
    <dl>
      <dt>Real feel</dt><dd id="realFeel">{{.RealFeel}}</dd>
      <dt>Humidity</dt><dd id="humidity">{{.Humidity}}</dd>
      <dt>Wind</dt><dd id="windSpeed">{{.WindSpeed}}</dd>
      <dt>Direction</dt><dd id="windDirection">{{.WindDirection}}</dd>
      <dt>Pressure</dt><dd id="pressure">{{.Pressure}}</dd>
      <dt>UV index</dt><dd id="uvIndex">{{.UVIndex}}</dd>
      <dt>Visibility</dt><dd id="visibility">{{.Visibility}}</dd>
    </dl>
    <div id="forecastCards">
    {{range .Forecast}}
      <div class="forecast-card">
        <div class="forecast-date">{{.Date}}</div>
        <img src="{{.IconURL}}" alt="{{.IconAlt}}" class="weather-icon small">
        <div class="forecast-temps"><span class="temp-high">{{.High}}</span> <span class="temp-low">{{.Low}}</span></div>
        <div class="forecast-description">{{.Description}}</div>
      </div>
    {{end}}
    </div>
  </div>
  {{with .Credit}}
  <div id="photoCredit" class="photo-credit">Photo by <a href="{{.ProfileURL}}" target="_blank">{{.Photographer}}</a> on Unsplash</div>
  {{end}}
  {{end}}
</div>
</div>
</body>
</html>
`))

// RenderHTML writes the state as a standalone HTML page.
func RenderHTML(w io.Writer, s State) error {
	return page.Execute(w, s)
}
