package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// googleNoResults is the error text kelvins/geocoder returns for ZERO_RESULTS.
const googleNoResults = "No results found."

// GoogleGeocoder implements weather.Geocoder with the Google Geocoding API through
// github.com/kelvins/geocoder. The library keeps its key in a package variable, so only
// one Google key can be active per process. It also builds its own timeout-less
// http.Client, so HTTP_TIMEOUT does not apply here; only the limiter is used.
type GoogleGeocoder struct {
	name    string
	country string
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker

	// lookup is geocoder.Geocoding outside of tests.
	lookup func(geocoder.Address) (geocoder.Location, error)
}

func NewGoogleGeocoder(cfg HTTPClientConfig, apiKey, country string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey

	return &GoogleGeocoder{
		name:    "google",
		country: country,
		limiter: cfg.Limiter,
		circuit: newCircuitBreaker("google-geocoder"),
		lookup:  geocoder.Geocoding,
	}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Geocode resolves query within the configured country.
func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (weather.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: empty location", weather.ErrLookup)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return weather.Coordinates{}, fmt.Errorf("%w: rate limit wait canceled: %v", weather.ErrLookup, err)
		}
	}

	// The library has no context support; honour cancellation before the call at least.
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %v", weather.ErrLookup, err)
	}

	result, err := g.circuit.Execute(func() (interface{}, error) {
		loc, err := g.lookup(geocoder.Address{
			City:    query,
			Country: g.country,
		})
		if err != nil && err.Error() == googleNoResults {
			return loc, fmt.Errorf("%w: %v", errNoMatch, err)
		}
		return loc, err
	})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("%w: %q: %v", weather.ErrLookup, query, err)
	}

	loc, ok := result.(geocoder.Location)
	if !ok {
		return weather.Coordinates{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: no match for %q", weather.ErrLookup, query)
	}

	return weather.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
}
