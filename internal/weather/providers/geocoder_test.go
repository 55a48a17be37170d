package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func newTestOpenCage(t *testing.T, handler http.HandlerFunc) *OpenCageGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewOpenCageGeocoder(HTTPClientConfig{Client: srv.Client()}, "geo-key", "India")
	g.baseURL = srv.URL
	return g
}

func TestOpenCageGeocode(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Delhi,India" {
			t.Errorf("expected country-qualified query, got %q", q.Get("q"))
		}
		if q.Get("key") != "geo-key" {
			t.Errorf("unexpected key %q", q.Get("key"))
		}
		w.Write([]byte(`{"results": [{"geometry": {"lat": 28.61, "lng": 77.2}}, {"geometry": {"lat": 1, "lng": 1}}]}`))
	})

	coords, err := g.Geocode(context.Background(), " Delhi ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 28.61 || coords.Longitude != 77.2 {
		t.Fatalf("expected first result, got %+v", coords)
	}
}

func TestOpenCageNoResults(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [], "status": {"code": 200}}`))
	})

	_, err := g.Geocode(context.Background(), "Atlantis")
	if !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestOpenCageNonSuccessIsLookupError(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})

	_, err := g.Geocode(context.Background(), "Delhi")
	if !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestOpenCageMissingGeometry(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"formatted": "Delhi"}]}`))
	})

	_, err := g.Geocode(context.Background(), "Delhi")
	if !errors.Is(err, weather.ErrDataShape) {
		t.Fatalf("expected ErrDataShape, got %v", err)
	}
}

func TestOpenCageEmptyQuery(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected for an empty query")
	})

	if _, err := g.Geocode(context.Background(), "  "); !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}
}

func TestGoogleGeocode(t *testing.T) {
	g := NewGoogleGeocoder(HTTPClientConfig{}, "google-key", "India")
	if geocoder.ApiKey != "google-key" {
		t.Fatalf("expected library key to be set")
	}

	var got geocoder.Address
	g.lookup = func(a geocoder.Address) (geocoder.Location, error) {
		got = a
		return geocoder.Location{Latitude: 19.07, Longitude: 72.87}, nil
	}

	coords, err := g.Geocode(context.Background(), "Mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.City != "Mumbai" || got.Country != "India" {
		t.Errorf("unexpected address %+v", got)
	}
	if coords.Latitude != 19.07 || coords.Longitude != 72.87 {
		t.Errorf("unexpected coords %+v", coords)
	}
}

func TestGoogleGeocodeFailures(t *testing.T) {
	g := NewGoogleGeocoder(HTTPClientConfig{}, "google-key", "India")

	g.lookup = func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, errors.New("ZERO_RESULTS")
	}
	if _, err := g.Geocode(context.Background(), "Atlantis"); !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup, got %v", err)
	}

	g.lookup = func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, nil
	}
	if _, err := g.Geocode(context.Background(), "Nowhere"); !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup for empty location, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Geocode(ctx, "Delhi"); !errors.Is(err, weather.ErrLookup) {
		t.Fatalf("expected ErrLookup for canceled context, got %v", err)
	}
}

func TestOpenCageClientErrorsKeepCircuitClosed(t *testing.T) {
	calls := 0
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 6 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"results": [{"geometry": {"lat": 28.61, "lng": 77.2}}]}`))
	})

	for i := 0; i < 6; i++ {
		if _, err := g.Geocode(context.Background(), "Dehli??"); !errors.Is(err, weather.ErrLookup) {
			t.Fatalf("attempt %d: expected ErrLookup, got %v", i, err)
		}
	}

	coords, err := g.Geocode(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("expected valid lookup after client errors, got %v", err)
	}
	if coords.Latitude != 28.61 {
		t.Fatalf("unexpected coords %+v", coords)
	}
}

func TestOpenCageServerErrorsOpenCircuit(t *testing.T) {
	calls := 0
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 6; i++ {
		g.Geocode(context.Background(), "Delhi")
	}
	_, err := g.Geocode(context.Background(), "Delhi")
	if !errors.Is(err, weather.ErrLookup) || !errors.Is(err, errCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if calls != 6 {
		t.Fatalf("expected 6 upstream calls, got %d", calls)
	}
}

func TestGoogleMissesKeepCircuitClosed(t *testing.T) {
	g := NewGoogleGeocoder(HTTPClientConfig{}, "google-key", "India")

	g.lookup = func(a geocoder.Address) (geocoder.Location, error) {
		if a.City == "Delhi" {
			return geocoder.Location{Latitude: 28.61, Longitude: 77.2}, nil
		}
		return geocoder.Location{}, errors.New(googleNoResults)
	}

	for i := 0; i < 6; i++ {
		if _, err := g.Geocode(context.Background(), "Atlantis"); !errors.Is(err, weather.ErrLookup) {
			t.Fatalf("attempt %d: expected ErrLookup, got %v", i, err)
		}
	}

	coords, err := g.Geocode(context.Background(), "Delhi")
	if err != nil {
		t.Fatalf("expected valid lookup after misses, got %v", err)
	}
	if coords.Latitude != 28.61 || coords.Longitude != 77.2 {
		t.Fatalf("unexpected coords %+v", coords)
	}
}

func TestUpstreamHealthy(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, true},
		{errNoMatch, true},
		{&statusError{code: http.StatusBadRequest}, true},
		{&statusError{code: http.StatusNotFound}, true},
		{&statusError{code: http.StatusTooManyRequests}, false},
		{&statusError{code: http.StatusInternalServerError}, false},
		{errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		if got := upstreamHealthy(tt.err); got != tt.want {
			t.Errorf("upstreamHealthy(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
