package weather

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-dashboard/internal/advisory"
)

// Report is everything the dashboard shows for one location query.
type Report struct {
	RequestID   string          `json:"requestId"`
	Query       string          `json:"query"`
	Coordinates Coordinates     `json:"coordinates"`
	Provider    string          `json:"provider"`
	Current     CurrentWeather  `json:"current"`
	Icon        string          `json:"icon"`
	Advice      advisory.Advice `json:"advice"`
	Daily       []DailySummary  `json:"daily"`
	Trends      Trends          `json:"trends"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// Service runs the dashboard pipeline: geocode, fetch current conditions, fetch the
// forecast, then derive summaries and advice. Steps run one after another on the
// caller's goroutine and the first failure abandons the query.
type Service struct {
	geocoder Geocoder
	provider Provider
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, provider Provider) *Service {
	return &Service{
		geocoder: geocoder,
		provider: provider,
		now:      time.Now,
	}
}

// ProviderName returns the name of the configured weather provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Build produces the report for a free-text location. Errors wrap ErrLookup, ErrService
// or ErrDataShape so callers can tell the user what went wrong.
func (s *Service) Build(ctx context.Context, location string) (*Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrLookup)
	}

	reqID := uuid.NewString()
	log.Printf("DEBUG: [%s] dashboard query for %q via %s/%s", reqID, location, s.geocoder.Name(), s.provider.Name())

	coords, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		log.Printf("ERROR: [%s] geocoding %q failed: %v", reqID, location, err)
		return nil, err
	}

	current, err := s.provider.FetchCurrent(ctx, coords)
	if err != nil {
		log.Printf("ERROR: [%s] current weather failed for %q: %v", reqID, location, err)
		return nil, err
	}

	forecast, err := s.provider.FetchForecast(ctx, coords)
	if err != nil {
		log.Printf("ERROR: [%s] forecast failed for %q: %v", reqID, location, err)
		return nil, err
	}

	cond := advisory.Conditions{
		Description: current.Description,
		Temperature: current.Temperature,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
	}
	score := ComfortIndex(current.Temperature, current.Humidity, current.WindSpeed)

	report := &Report{
		RequestID:   reqID,
		Query:       location,
		Coordinates: coords,
		Provider:    s.provider.Name(),
		Current:     current,
		Icon:        Icon(current.Description),
		Advice:      advisory.Evaluate(cond, score),
		Daily:       SummarizeDaily(forecast.Samples, forecast.Zone),
		Trends:      BuildTrends(forecast.Samples),
		GeneratedAt: s.now().UTC(),
	}

	log.Printf("INFO: [%s] %q resolved to (%.4f, %.4f): %d samples, %d days, comfort %.1f",
		reqID, location, coords.Latitude, coords.Longitude, len(forecast.Samples), len(report.Daily), score)

	return report, nil
}
