package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig configures the weather-search backend.
type AppConfig struct {
	AccuWeatherAPIKey  string
	AccuWeatherBaseURL string
	UnsplashAPIKey     string
	UnsplashBaseURL    string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Lookup history retention.
	StoreMaxHistory int           // max number of lookups per city (0 = unlimited)
	StoreMaxAge     time.Duration // max age of lookups (0 = unlimited)

	// PruneInterval controls how often expired lookups are dropped.
	PruneInterval time.Duration

	Port string
}

// WidgetConfig configures the interactive weather-widget client.
type WidgetConfig struct {
	// APIURL is the base URL of the weather-search backend.
	APIURL string

	// DBPath is the SQLite file holding the widget's local key-value storage.
	DBPath string

	// HeartbeatInterval is how often the background worker checks the backend.
	HeartbeatInterval time.Duration
}

// Load reads the backend configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	loadDotEnv()
	cfg := &AppConfig{}

	cfg.AccuWeatherAPIKey = os.Getenv("ACCUWEATHER_API_KEY")
	cfg.AccuWeatherBaseURL = getenvDefault("ACCUWEATHER_BASE_URL", "http://dataservice.accuweather.com")
	cfg.UnsplashAPIKey = os.Getenv("UNSPLASH_API_KEY")
	cfg.UnsplashBaseURL = getenvDefault("UNSPLASH_BASE_URL", "https://api.unsplash.com")

	if cfg.AccuWeatherAPIKey == "" {
		log.Println("WARN: ACCUWEATHER_API_KEY is not set, every lookup will fail")
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 20)
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}
	if cfg.PruneInterval, err = getenvDuration("PRUNE_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")
	return cfg, nil
}

// LoadWidget reads the widget configuration from environment with sensible defaults.
func LoadWidget() (*WidgetConfig, error) {
	loadDotEnv()
	cfg := &WidgetConfig{}

	cfg.APIURL = getenvDefault("WEATHER_API_URL", "http://localhost:8080")
	cfg.DBPath = getenvDefault("WIDGET_DB_PATH", "weather-widget.db")

	var err error
	if cfg.HeartbeatInterval, err = getenvDuration("WIDGET_HEARTBEAT_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
