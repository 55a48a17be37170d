package weather

import "time"

// TrendPoint is one value of a trend series.
type TrendPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// TrendSeries is a metric over the forecast window with its highlighted extremes.
type TrendSeries struct {
	Metric string       `json:"metric"`
	Unit   string       `json:"unit"`
	Points []TrendPoint `json:"points"`
	Max    *TrendPoint  `json:"max,omitempty"`
	Min    *TrendPoint  `json:"min,omitempty"`
}

// Trends holds the temperature, humidity and wind speed series of a forecast.
type Trends struct {
	Temperature TrendSeries `json:"temperature"`
	Humidity    TrendSeries `json:"humidity"`
	WindSpeed   TrendSeries `json:"windSpeed"`
}

// BuildTrends turns forecast samples into chartable series. Temperature carries both
// extremes; humidity and wind only their maximum. The first sample holding an extreme wins.
func BuildTrends(samples []ForecastSample) Trends {
	t := Trends{
		Temperature: series("temperature", "°C", samples, func(s ForecastSample) float64 { return s.Temperature }),
		Humidity:    series("humidity", "%", samples, func(s ForecastSample) float64 { return s.Humidity }),
		WindSpeed:   series("windSpeed", "m/s", samples, func(s ForecastSample) float64 { return s.WindSpeed }),
	}
	t.Humidity.Min = nil
	t.WindSpeed.Min = nil
	return t
}

func series(metric, unit string, samples []ForecastSample, value func(ForecastSample) float64) TrendSeries {
	ts := TrendSeries{
		Metric: metric,
		Unit:   unit,
		Points: make([]TrendPoint, 0, len(samples)),
	}
	for _, s := range samples {
		p := TrendPoint{Time: s.Timestamp, Value: value(s)}
		ts.Points = append(ts.Points, p)

		if ts.Max == nil || p.Value > ts.Max.Value {
			maxP := p
			ts.Max = &maxP
		}
		if ts.Min == nil || p.Value < ts.Min.Value {
			minP := p
			ts.Min = &minP
		}
	}
	return ts
}
