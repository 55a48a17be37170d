package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// OpenCageGeocoder implements weather.Geocoder on top of the OpenCage forward geocoding API.
// Every query is qualified with a fixed country.
type OpenCageGeocoder struct {
	name    string
	apiKey  string
	country string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenCageGeocoder(cfg HTTPClientConfig, apiKey, country string) *OpenCageGeocoder {
	return &OpenCageGeocoder{
		name:    "opencage",
		apiKey:  apiKey,
		country: country,
		baseURL: "https://api.opencagedata.com/geocode/v1/json",
		httpCfg: cfg,
		circuit: newCircuitBreaker("opencage"),
	}
}

func (g *OpenCageGeocoder) Name() string {
	return g.name
}

// Geocode returns the coordinates of the first match for query.
func (g *OpenCageGeocoder) Geocode(ctx context.Context, query string) (weather.Coordinates, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: empty location", weather.ErrLookup)
	}
	if g.apiKey == "" {
		return weather.Coordinates{}, fmt.Errorf("%w: opencage api key is not configured", weather.ErrLookup)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		q := query
		if g.country != "" {
			q = fmt.Sprintf("%s,%s", query, g.country)
		}

		values := url.Values{}
		values.Set("q", q)
		values.Set("key", g.apiKey)

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	body, err := doRequest(ctx, g.httpCfg, g.circuit, buildRequest)
	if err != nil {
		if errors.Is(err, weather.ErrService) {
			return weather.Coordinates{}, fmt.Errorf("%w: %q: %v", weather.ErrLookup, query, err)
		}
		return weather.Coordinates{}, err
	}

	var payload struct {
		Results []struct {
			Geometry *struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := decodeJSON(body, &payload); err != nil {
		return weather.Coordinates{}, err
	}

	if len(payload.Results) == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: no match for %q", weather.ErrLookup, query)
	}
	geo := payload.Results[0].Geometry
	if geo == nil || geo.Lat == nil || geo.Lng == nil {
		return weather.Coordinates{}, fmt.Errorf("%w: geocoding result has no geometry", weather.ErrDataShape)
	}

	return weather.Coordinates{Latitude: *geo.Lat, Longitude: *geo.Lng}, nil
}
