package widget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/i474232898/weather-search/internal/weather"
)

func TestRenderRoundsTemperatures(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{21.6, "22°C"},
		{18.4, "18°C"},
		{21.5, "22°C"},
		{-2.5, "-2°C"},
		{-2.6, "-3°C"},
		{0, "0°C"},
	}
	for _, tt := range tests {
		r := tokyoReport()
		r.CurrentWeather.Temperature = tt.in
		r.CurrentWeather.RealFeel = tt.in
		p := Render(r)
		if p.Temperature != tt.want || p.RealFeel != tt.want {
			t.Fatalf("Render(%v): got temperature %q real feel %q, want %q", tt.in, p.Temperature, p.RealFeel, tt.want)
		}
	}
}

func TestRenderForecastCardsInOrder(t *testing.T) {
	p := Render(tokyoReport())

	if len(p.Forecast) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(p.Forecast))
	}
	want := []string{"Sunny", "Showers", "Cloudy"}
	for i, card := range p.Forecast {
		if card.Description != want[i] {
			t.Fatalf("card %d: expected %q, got %q", i, want[i], card.Description)
		}
	}
	first := p.Forecast[0]
	if first.Date != "Wed, May 1" || first.High != "22°" || first.Low != "12°" {
		t.Fatalf("unexpected first card: %+v", first)
	}
	if first.IconURL != "https://developer.accuweather.com/sites/default/files/01-s.png" {
		t.Fatalf("unexpected icon url %q", first.IconURL)
	}
}

func TestRenderEmptyForecast(t *testing.T) {
	r := tokyoReport()
	r.Forecast = nil
	if p := Render(r); len(p.Forecast) != 0 {
		t.Fatalf("expected no cards, got %d", len(p.Forecast))
	}
}

func TestRenderDetails(t *testing.T) {
	p := Render(tokyoReport())

	if p.Humidity != "61%" || p.WindSpeed != "11.1 km/h" || p.Pressure != "1013 hPa" ||
		p.UVIndex != "4" || p.Visibility != "16.1 km" || p.WindDirection != "NNE" {
		t.Fatalf("unexpected details: %+v", p)
	}
	if p.IconAlt != "Partly sunny" || p.Description != "Partly sunny" {
		t.Fatalf("unexpected description: %+v", p)
	}
}

func TestRenderBackground(t *testing.T) {
	r := tokyoReport()
	r.BackgroundImage = &weather.BackgroundImage{
		URL:             "https://images.example/tokyo.jpg",
		Photographer:    "Jane Doe",
		PhotographerURL: "https://unsplash.com/@jane",
	}

	p := Render(r)
	if p.Background != "https://images.example/tokyo.jpg" {
		t.Fatalf("unexpected background %q", p.Background)
	}
	if p.Credit == nil || p.Credit.Photographer != "Jane Doe" {
		t.Fatalf("expected photo credit, got %+v", p.Credit)
	}
	if p.Credit.ProfileURL != "https://unsplash.com/@jane?utm_medium=referral&utm_source=weather_app" {
		t.Fatalf("unexpected profile link %q", p.Credit.ProfileURL)
	}

	r.BackgroundImage = nil
	p = Render(r)
	if p.Background != "" || p.Credit != nil {
		t.Fatalf("expected background and credit to be cleared, got %q %+v", p.Background, p.Credit)
	}
}

func TestIconURL(t *testing.T) {
	if got := IconURL(7); got != "https://developer.accuweather.com/sites/default/files/07-s.png" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := IconURL(44); got != "https://developer.accuweather.com/sites/default/files/44-s.png" {
		t.Fatalf("unexpected url %q", got)
	}
	// No known icon has code 99; a URL is produced anyway.
	if got := IconURL(99); !strings.HasSuffix(got, "/99-s.png") {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestRenderHTMLEscapesServerStrings(t *testing.T) {
	r := tokyoReport()
	r.Location.Name = `<script>alert("x")</script>`
	r.BackgroundImage = &weather.BackgroundImage{
		URL:             "https://images.example/a.jpg",
		Photographer:    `<b>Eve</b>`,
		PhotographerURL: `javascript:alert(1)`,
	}
	p := Render(r)

	var buf bytes.Buffer
	if err := RenderHTML(&buf, State{Input: `"><img>`, Status: StatusResultShown, Weather: &p}); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	out := buf.String()

	for _, raw := range []string{`<script>alert`, `<b>Eve</b>`, `href="javascript:`, `value=""><img>`} {
		if strings.Contains(out, raw) {
			t.Fatalf("output contains unescaped %q:\n%s", raw, out)
		}
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped location name in output:\n%s", out)
	}
	if !strings.Contains(out, `id="photoCredit"`) || strings.Count(out, `class="forecast-card"`) != 3 {
		t.Fatalf("expected credit block and 3 forecast cards:\n%s", out)
	}
}

func TestRenderHTMLHidesPanelOnError(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, State{Status: StatusErrorShown, Error: "City not found"}); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "City not found") || strings.Contains(out, `id="weatherDisplay"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderText(t *testing.T) {
	p := Render(tokyoReport())

	var buf bytes.Buffer
	if err := RenderText(&buf, State{Status: StatusResultShown, Weather: &p}); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Tokyo", "Kanto, Japan", "18°C", "Wed, May 1", "Showers"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderText(&buf, State{Status: StatusLoading}); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	if buf.String() != "Loading...\n" {
		t.Fatalf("unexpected loading output %q", buf.String())
	}
}
