package weather

import (
	"time"
)

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather is the snapshot of current conditions for one query.
type CurrentWeather struct {
	Description string    `json:"description"`
	Temperature float64   `json:"temperatureC"`
	FeelsLike   float64   `json:"feelsLikeC"`
	Humidity    float64   `json:"humidityPercent"`
	Pressure    float64   `json:"pressureHpa"`
	WindSpeed   float64   `json:"windSpeed"` // m/s
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`

	// Zone is the location-local zone reported by the provider (UTC when unknown).
	Zone *time.Location `json:"-"`
}

// ForecastSample is a single 3-hour point of the forecast window.
type ForecastSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Description string    `json:"description"`
}

// Forecast is the ordered sample window returned by a forecast provider.
// Zone is the location-local zone used for calendar-day grouping.
type Forecast struct {
	Samples []ForecastSample `json:"samples"`
	Zone    *time.Location   `json:"-"`
}

// DailySummary aggregates all samples that fall on the same calendar date.
type DailySummary struct {
	Date               time.Time `json:"date"` // midnight in the grouping zone
	AverageTemperature float64   `json:"averageTemperatureC"`
	Condition          string    `json:"condition"`
	Samples            int       `json:"samples"`
}
