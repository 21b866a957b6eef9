package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-search/internal/weather"
)

var (
	// ErrNotFound is returned when no lookup is recorded for a given city.
	ErrNotFound = errors.New("no lookups recorded for city")
)

// LookupHistory holds a time-ordered list of lookups for a city.
type LookupHistory struct {
	Records []weather.LookupRecord
}

// MemoryStore is a concurrency-safe in-memory implementation of the lookup history.
type MemoryStore struct {
	mu sync.RWMutex

	// key: weather.CityKey, value: history
	data map[string]*LookupHistory

	// retention configuration
	maxHistory int           // max number of lookups per city
	maxAge     time.Duration // optional max age for lookups
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*LookupHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveLookup appends a new lookup for a city and enforces retention by count.
// Age retention is applied by Prune.
func (s *MemoryStore) SaveLookup(city string, record weather.LookupRecord) {
	key := weather.CityKey(city)

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &LookupHistory{}
		s.data[key] = history
	}

	history.Records = append(history.Records, record)

	if s.maxHistory > 0 && len(history.Records) > s.maxHistory {
		over := len(history.Records) - s.maxHistory
		history.Records = history.Records[over:]
	}
}

// Prune removes lookups older than the configured max age and drops
// cities left without any lookup. It returns the number of removed lookups.
func (s *MemoryStore) Prune(now time.Time) int {
	if s.maxAge <= 0 {
		return 0
	}
	cutoff := now.Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, history := range s.data {
		i := 0
		for ; i < len(history.Records); i++ {
			if !history.Records[i].RecordedAt.Before(cutoff) {
				break
			}
		}
		removed += i
		history.Records = history.Records[i:]
		if len(history.Records) == 0 {
			delete(s.data, key)
		}
	}
	return removed
}

// GetLatest returns the most recent lookup for a city.
func (s *MemoryStore) GetLatest(city string) (weather.LookupRecord, error) {
	key := weather.CityKey(city)

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Records) == 0 {
		return weather.LookupRecord{}, ErrNotFound
	}
	return history.Records[len(history.Records)-1], nil
}

// GetRange returns all lookups for a city between from and to (inclusive).
func (s *MemoryStore) GetRange(city string, from, to time.Time) ([]weather.LookupRecord, error) {
	key := weather.CityKey(city)

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Records) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.LookupRecord
	for _, rec := range history.Records {
		if !rec.RecordedAt.Before(from) && !rec.RecordedAt.After(to) {
			result = append(result, rec)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
