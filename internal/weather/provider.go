package weather

import (
	"context"
	"time"
)

// Provider abstracts the weather data source (AccuWeather).
//
// FindLocation returns (nil, nil) when the query matches no city.
type Provider interface {
	Name() string
	FindLocation(ctx context.Context, city string) (*Location, error)
	CurrentConditions(ctx context.Context, locationKey string) (CurrentWeather, error)
	DailyForecast(ctx context.Context, locationKey string) ([]ForecastDay, error)
}

// ImageProvider looks up a decorative background photo for a city.
// It returns (nil, nil) when nothing matches.
type ImageProvider interface {
	Name() string
	CityImage(ctx context.Context, city string) (*BackgroundImage, error)
}

// LookupRecord is a successful lookup as kept in the history store.
type LookupRecord struct {
	City       string    `json:"city"`
	RecordedAt time.Time `json:"recordedAt"` // always UTC
	Report     Report    `json:"report"`
}

// Store is the contract the in-memory history store (and any future persistent store) must satisfy.
type Store interface {
	SaveLookup(city string, record LookupRecord)
	GetLatest(city string) (LookupRecord, error)
	GetRange(city string, from, to time.Time) ([]LookupRecord, error)
	Prune(now time.Time) int
}
