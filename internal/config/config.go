package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeocoderOpenCage = "opencage"
	GeocoderGoogle   = "google"

	ProviderOpenWeather = "openweathermap"
	ProviderOpenMeteo   = "openmeteo"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	OpenCageAPIKey    string
	GoogleAPIKey      string

	// GeocoderProvider selects the geocoding backend (opencage or google).
	GeocoderProvider string
	// WeatherProvider selects the weather backend; empty picks openweathermap when a key is
	// configured and openmeteo otherwise.
	WeatherProvider string

	// GeocodeCountry qualifies every free-text lookup.
	GeocodeCountry string

	HTTPTimeout time.Duration

	// Outbound throttle shared by all upstream clients (0 = unlimited).
	UpstreamRPS   float64
	UpstreamBurst int

	// Watch mode: periodically log reports for these locations (empty = disabled).
	WatchLocations []string
	WatchInterval  time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenCageAPIKey = os.Getenv("OPENCAGE_API_KEY")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	cfg.GeocoderProvider = strings.ToLower(getenvDefault("GEOCODER_PROVIDER", GeocoderOpenCage))
	switch cfg.GeocoderProvider {
	case GeocoderOpenCage, GeocoderGoogle:
	default:
		return nil, fmt.Errorf("invalid GEOCODER_PROVIDER %q: want %s or %s", cfg.GeocoderProvider, GeocoderOpenCage, GeocoderGoogle)
	}

	cfg.WeatherProvider = strings.ToLower(os.Getenv("WEATHER_PROVIDER"))
	switch cfg.WeatherProvider {
	case "":
		cfg.WeatherProvider = ProviderOpenMeteo
		if cfg.OpenWeatherAPIKey != "" {
			cfg.WeatherProvider = ProviderOpenWeather
		}
	case ProviderOpenWeather, ProviderOpenMeteo:
	default:
		return nil, fmt.Errorf("invalid WEATHER_PROVIDER %q: want %s or %s", cfg.WeatherProvider, ProviderOpenWeather, ProviderOpenMeteo)
	}

	cfg.GeocodeCountry = getenvDefault("GEOCODE_COUNTRY", "India")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	rps, err := strconv.ParseFloat(getenvDefault("UPSTREAM_RPS", "5"), 64)
	if err != nil || rps < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_RPS: %q", os.Getenv("UPSTREAM_RPS"))
	}
	cfg.UpstreamRPS = rps
	burst, err := strconv.Atoi(getenvDefault("UPSTREAM_BURST", "5"))
	if err != nil || (rps > 0 && burst < 1) {
		return nil, fmt.Errorf("invalid UPSTREAM_BURST: %q (must be at least 1 when UPSTREAM_RPS is set)", os.Getenv("UPSTREAM_BURST"))
	}
	cfg.UpstreamBurst = burst

	cfg.WatchLocations = splitList(os.Getenv("WATCH_LOCATIONS"))
	interval, err := getenvDuration("WATCH_INTERVAL", "30m")
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		return nil, fmt.Errorf("invalid WATCH_INTERVAL: %s is below the 1m minimum", interval)
	}
	cfg.WatchInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
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
