package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACCUWEATHER_API_KEY", "k")
	t.Setenv("PORT", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("STORE_MAX_HISTORY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.HTTPTimeout != 10*time.Second || cfg.StoreMaxHistory != 20 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("STORE_MAX_AGE", "a day")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid STORE_MAX_AGE")
	}
}

func TestLoadWidget(t *testing.T) {
	t.Setenv("WEATHER_API_URL", "http://weather.internal:9000")
	t.Setenv("WIDGET_HEARTBEAT_INTERVAL", "30s")

	cfg, err := LoadWidget()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://weather.internal:9000" || cfg.HeartbeatInterval != 30*time.Second {
		t.Fatalf("unexpected widget config: %+v", cfg)
	}
}
