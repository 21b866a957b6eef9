package store

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/weather-search/internal/weather"
)

func record(city string, at time.Time) weather.LookupRecord {
	return weather.LookupRecord{
		City:       city,
		RecordedAt: at,
		Report:     weather.Report{Location: weather.Location{Name: city}, Timestamp: at},
	}
}

func TestMemoryStoreLatestUsesCanonicalCityKey(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.SaveLookup("Paris", record("Paris", base))
	s.SaveLookup("  paris ", record("paris", base.Add(time.Minute)))

	got, err := s.GetLatest("PARIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.RecordedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("expected latest lookup at %v, got %v", base.Add(time.Minute), got.RecordedAt)
	}

	if _, err := s.GetLatest("Lyon"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreMaxHistory(t *testing.T) {
	s := NewMemoryStore(2, 0)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.SaveLookup("Tokyo", record("Tokyo", base.Add(time.Duration(i)*time.Minute)))
	}

	all, err := s.GetRange("Tokyo", base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 lookups kept, got %d", len(all))
	}
	if !all[0].RecordedAt.Equal(base.Add(3 * time.Minute)) {
		t.Fatalf("expected oldest kept lookup at minute 3, got %v", all[0].RecordedAt)
	}
}

func TestMemoryStorePrune(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.SaveLookup("Tokyo", record("Tokyo", now.Add(-3*time.Hour)))
	s.SaveLookup("Tokyo", record("Tokyo", now.Add(-10*time.Minute)))
	s.SaveLookup("Oslo", record("Oslo", now.Add(-2*time.Hour)))

	if removed := s.Prune(now); removed != 2 {
		t.Fatalf("expected 2 pruned lookups, got %d", removed)
	}
	if _, err := s.GetLatest("Oslo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected Oslo to be dropped, got %v", err)
	}
	got, err := s.GetRange("Tokyo", now.Add(-24*time.Hour), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 Tokyo lookup left, got %d", len(got))
	}
}

func TestMemoryStoreRangeOutsideHistory(t *testing.T) {
	s := NewMemoryStore(0, 0)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.SaveLookup("Tokyo", record("Tokyo", base))

	if _, err := s.GetRange("Tokyo", base.Add(time.Hour), base.Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
