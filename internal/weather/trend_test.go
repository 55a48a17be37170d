package weather

import (
	"testing"
	"time"
)

func TestBuildTrends(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	samples := []ForecastSample{
		{Timestamp: start, Temperature: 25, Humidity: 40, WindSpeed: 3},
		{Timestamp: start.Add(3 * time.Hour), Temperature: 31, Humidity: 70, WindSpeed: 6},
		{Timestamp: start.Add(6 * time.Hour), Temperature: 19, Humidity: 70, WindSpeed: 2},
		{Timestamp: start.Add(9 * time.Hour), Temperature: 31, Humidity: 55, WindSpeed: 6},
	}

	tr := BuildTrends(samples)

	if len(tr.Temperature.Points) != 4 || len(tr.Humidity.Points) != 4 || len(tr.WindSpeed.Points) != 4 {
		t.Fatalf("expected 4 points per series")
	}

	if tr.Temperature.Max == nil || tr.Temperature.Max.Value != 31 || !tr.Temperature.Max.Time.Equal(start.Add(3*time.Hour)) {
		t.Errorf("unexpected temperature max: %+v", tr.Temperature.Max)
	}
	if tr.Temperature.Min == nil || tr.Temperature.Min.Value != 19 {
		t.Errorf("unexpected temperature min: %+v", tr.Temperature.Min)
	}
	if tr.Humidity.Max == nil || !tr.Humidity.Max.Time.Equal(start.Add(3*time.Hour)) {
		t.Errorf("expected first humidity peak to win, got %+v", tr.Humidity.Max)
	}
	if tr.Humidity.Min != nil || tr.WindSpeed.Min != nil {
		t.Errorf("humidity and wind series should only carry a maximum")
	}
	if tr.WindSpeed.Unit != "m/s" {
		t.Errorf("unexpected wind unit %q", tr.WindSpeed.Unit)
	}
}

func TestBuildTrendsEmpty(t *testing.T) {
	tr := BuildTrends(nil)
	if tr.Temperature.Max != nil || tr.Temperature.Min != nil {
		t.Fatalf("expected no annotations for empty input")
	}
	if len(tr.Temperature.Points) != 0 {
		t.Fatalf("expected no points for empty input")
	}
}

func TestIcon(t *testing.T) {
	if got := Icon("clear sky"); got != "☀️" {
		t.Errorf("Icon(clear sky) = %q", got)
	}
	if got := Icon("volcanic ash"); got != DefaultIcon {
		t.Errorf("expected fallback icon, got %q", got)
	}
}
