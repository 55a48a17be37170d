package weather

import (
	"context"
)

// Geocoder resolves free-text locations to coordinates.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, query string) (Coordinates, error)
}

// Provider abstracts a weather data source that serves both current conditions and
// the multi-day forecast window for a coordinate pair.
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, coords Coordinates) (CurrentWeather, error)
	FetchForecast(ctx context.Context, coords Coordinates) (Forecast, error)
}
