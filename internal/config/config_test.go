package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENWEATHER_API_KEY", "OPENCAGE_API_KEY", "GOOGLE_GEOCODER_API_KEY", "GEOCODER_PROVIDER",
		"WEATHER_PROVIDER", "GEOCODE_COUNTRY", "HTTP_TIMEOUT", "UPSTREAM_RPS", "UPSTREAM_BURST",
		"WATCH_LOCATIONS", "WATCH_INTERVAL", "PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeocoderProvider != GeocoderOpenCage {
		t.Errorf("expected opencage geocoder, got %q", cfg.GeocoderProvider)
	}
	if cfg.WeatherProvider != ProviderOpenMeteo {
		t.Errorf("expected keyless openmeteo provider without an OpenWeather key, got %q", cfg.WeatherProvider)
	}
	if cfg.GeocodeCountry != "India" {
		t.Errorf("expected India, got %q", cfg.GeocodeCountry)
	}
	if cfg.HTTPTimeout != 10*time.Second || cfg.WatchInterval != 30*time.Minute {
		t.Errorf("unexpected durations: %v %v", cfg.HTTPTimeout, cfg.WatchInterval)
	}
	if len(cfg.WatchLocations) != 0 {
		t.Errorf("expected watch mode disabled, got %v", cfg.WatchLocations)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "owm")
	t.Setenv("OPENCAGE_API_KEY", "oc")
	t.Setenv("GEOCODER_PROVIDER", "Google")
	t.Setenv("GEOCODE_COUNTRY", "Nepal")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_RPS", "0.5")
	t.Setenv("WATCH_LOCATIONS", "Delhi, Mumbai ,,Pune")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "owm" || cfg.OpenCageAPIKey != "oc" {
		t.Errorf("keys not loaded: %+v", cfg)
	}
	if cfg.WeatherProvider != ProviderOpenWeather {
		t.Errorf("expected openweathermap when a key is set, got %q", cfg.WeatherProvider)
	}
	if cfg.GeocoderProvider != GeocoderGoogle {
		t.Errorf("expected google geocoder, got %q", cfg.GeocoderProvider)
	}
	if cfg.GeocodeCountry != "Nepal" || cfg.HTTPTimeout != 3*time.Second || cfg.UpstreamRPS != 0.5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	want := []string{"Delhi", "Mumbai", "Pune"}
	if len(cfg.WatchLocations) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.WatchLocations)
	}
	for i := range want {
		if cfg.WatchLocations[i] != want[i] {
			t.Errorf("expected %v, got %v", want, cfg.WatchLocations)
		}
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"GEOCODER_PROVIDER", "bing"},
		{"WEATHER_PROVIDER", "darksky"},
		{"HTTP_TIMEOUT", "soon"},
		{"WATCH_INTERVAL", "hourly"},
		{"WATCH_INTERVAL", "30s"},
		{"UPSTREAM_RPS", "-1"},
		{"UPSTREAM_BURST", "0"},
		{"UPSTREAM_BURST", "-3"},
		{"UPSTREAM_BURST", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestLoadAllowsZeroBurstWithoutThrottle(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_RPS", "0")
	t.Setenv("UPSTREAM_BURST", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpstreamRPS != 0 || cfg.UpstreamBurst != 0 {
		t.Errorf("unexpected throttle settings: %v %d", cfg.UpstreamRPS, cfg.UpstreamBurst)
	}
}
