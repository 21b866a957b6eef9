package providers

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-search/internal/weather"
)

const (
	DefaultUnsplashBaseURL = "https://api.unsplash.com"

	photoSearchPath = "/search/photos"
)

// UnsplashProvider implements the weather.ImageProvider interface for Unsplash.
type UnsplashProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig

	// pick chooses one of n results.
	pick func(n int) int
}

func NewUnsplashProvider(client *http.Client, baseURL, apiKey string) *UnsplashProvider {
	if baseURL == "" {
		baseURL = DefaultUnsplashBaseURL
	}

	return &UnsplashProvider{
		name:    "unsplash",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Circuit: newCircuit("unsplash"),
		},
		pick: rand.Intn,
	}
}

func (p *UnsplashProvider) Name() string {
	return p.name
}

// CityImage returns a random landscape photo matching the city name.
func (p *UnsplashProvider) CityImage(ctx context.Context, city string) (*weather.BackgroundImage, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("unsplash api key is not configured")
	}

	values := url.Values{}
	values.Set("query", city)
	values.Set("orientation", "landscape")
	values.Set("per_page", "20")

	u := fmt.Sprintf("%s%s?%s", p.baseURL, photoSearchPath, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+p.apiKey)

	var payload struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
			User struct {
				Name  string `json:"name"`
				Links struct {
					HTML string `json:"html"`
				} `json:"links"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.httpCfg, req, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}

	photo := payload.Results[p.pick(len(payload.Results))]
	return &weather.BackgroundImage{
		URL:             photo.URLs.Regular,
		Photographer:    photo.User.Name,
		PhotographerURL: photo.User.Links.HTML,
	}, nil
}

var _ weather.ImageProvider = (*UnsplashProvider)(nil)
