package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrCityRequired        = errors.New("City name is required")
	ErrCityNotFound        = errors.New("City not found")
	ErrWeatherUnavailable  = errors.New("Weather data not available")
	ErrForecastUnavailable = errors.New("Forecast data not available")
	ErrNoProvider          = errors.New("no weather provider configured")
)

// Service orchestrates the weather provider, the image provider and the lookup history.
type Service struct {
	store    Store
	provider Provider
	images   ImageProvider
	now      func() time.Time
}

// NewService creates a new Service. images may be nil, in which case
// reports never carry a background image.
func NewService(store Store, provider Provider, images ImageProvider) *Service {
	return &Service{
		store:    store,
		provider: provider,
		images:   images,
		now:      time.Now,
	}
}

// Lookup resolves city, fetches current conditions, the daily forecast and a
// background image, records the result and returns the assembled report.
func (s *Service) Lookup(ctx context.Context, city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Report{}, ErrCityRequired
	}
	if s.provider == nil {
		return Report{}, ErrNoProvider
	}

	loc, err := s.provider.FindLocation(ctx, city)
	if err != nil {
		log.Printf("ERROR: provider %s location search failed for %q: %v", s.provider.Name(), city, err)
		return Report{}, ErrCityNotFound
	}
	if loc == nil {
		return Report{}, ErrCityNotFound
	}

	current, err := s.provider.CurrentConditions(ctx, loc.Key)
	if err != nil {
		log.Printf("ERROR: provider %s current conditions failed for %s: %v", s.provider.Name(), loc.Key, err)
		return Report{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	forecast, err := s.provider.DailyForecast(ctx, loc.Key)
	if err != nil {
		log.Printf("ERROR: provider %s forecast failed for %s: %v", s.provider.Name(), loc.Key, err)
		return Report{}, fmt.Errorf("%w: %v", ErrForecastUnavailable, err)
	}
	if forecast == nil {
		forecast = []ForecastDay{}
	}

	report := Report{
		Location:        *loc,
		CurrentWeather:  current,
		Forecast:        forecast,
		BackgroundImage: s.cityImage(ctx, city),
		Timestamp:       s.now().UTC(),
	}

	if s.store != nil {
		s.store.SaveLookup(city, LookupRecord{
			City:       city,
			RecordedAt: report.Timestamp,
			Report:     report,
		})
	}
	return report, nil
}

// cityImage never fails the lookup; a missing photo only drops the background.
func (s *Service) cityImage(ctx context.Context, city string) *BackgroundImage {
	if s.images == nil {
		return nil
	}
	img, err := s.images.CityImage(ctx, city)
	if err != nil {
		log.Printf("WARN: image provider %s failed for %q: %v", s.images.Name(), city, err)
		return nil
	}
	if img == nil || img.URL == "" {
		return nil
	}
	return img
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(city string) (LookupRecord, error) {
	return s.store.GetLatest(city)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(city string, from, to time.Time) ([]LookupRecord, error) {
	return s.store.GetRange(city, from, to)
}

// PruneHistory drops lookups that fall outside the store retention.
func (s *Service) PruneHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n := s.store.Prune(s.now()); n > 0 {
		log.Printf("INFO: pruned %d expired lookups", n)
	}
	return nil
}
