package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// openMeteoStep thins the hourly series to the 3-hour cadence of the OpenWeatherMap window.
const openMeteoStep = 3

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// It needs no API key, which makes it the fallback when OpenWeatherMap is not configured.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(cfg HTTPClientConfig) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: cfg,
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoPayload struct {
	UTCOffsetSeconds *int `json:"utc_offset_seconds"`
	Current          *struct {
		Temperature *float64 `json:"temperature_2m"`
		Apparent    *float64 `json:"apparent_temperature"`
		Humidity    *float64 `json:"relative_humidity_2m"`
		Pressure    *float64 `json:"surface_pressure"`
		WindSpeed   *float64 `json:"wind_speed_10m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
	Hourly *struct {
		Time        []int64   `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		Humidity    []float64 `json:"relative_humidity_2m"`
		WindSpeed   []float64 `json:"wind_speed_10m"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily *struct {
		Sunrise []int64 `json:"sunrise"`
		Sunset  []int64 `json:"sunset"`
	} `json:"daily"`
}

func (p *OpenMeteoProvider) FetchCurrent(ctx context.Context, coords weather.Coordinates) (weather.CurrentWeather, error) {
	payload, err := p.get(ctx, coords, func(v url.Values) {
		v.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,surface_pressure,wind_speed_10m,weather_code")
		v.Set("daily", "sunrise,sunset")
		v.Set("forecast_days", "1")
	})
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	c := payload.Current
	if c == nil || c.Temperature == nil || c.Apparent == nil || c.Humidity == nil ||
		c.Pressure == nil || c.WindSpeed == nil || c.WeatherCode == nil {
		return weather.CurrentWeather{}, fmt.Errorf("%w: current block is incomplete", weather.ErrDataShape)
	}

	zone := zoneFromOffset(payload.UTCOffsetSeconds)
	cw := weather.CurrentWeather{
		Description: describeOpenMeteoCode(*c.WeatherCode),
		Temperature: *c.Temperature,
		FeelsLike:   *c.Apparent,
		Humidity:    *c.Humidity,
		Pressure:    *c.Pressure,
		WindSpeed:   *c.WindSpeed,
		Zone:        zone,
	}
	if d := payload.Daily; d != nil && len(d.Sunrise) > 0 && len(d.Sunset) > 0 {
		cw.Sunrise = time.Unix(d.Sunrise[0], 0).In(zone)
		cw.Sunset = time.Unix(d.Sunset[0], 0).In(zone)
	}
	return cw, nil
}

func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, coords weather.Coordinates) (weather.Forecast, error) {
	payload, err := p.get(ctx, coords, func(v url.Values) {
		v.Set("hourly", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
		v.Set("forecast_days", "5")
	})
	if err != nil {
		return weather.Forecast{}, err
	}

	h := payload.Hourly
	if h == nil {
		return weather.Forecast{}, fmt.Errorf("%w: hourly block is missing", weather.ErrDataShape)
	}
	n := len(h.Time)
	if len(h.Temperature) != n || len(h.Humidity) != n || len(h.WindSpeed) != n || len(h.WeatherCode) != n {
		return weather.Forecast{}, fmt.Errorf("%w: hourly arrays differ in length", weather.ErrDataShape)
	}

	zone := zoneFromOffset(payload.UTCOffsetSeconds)
	samples := make([]weather.ForecastSample, 0, n/openMeteoStep+1)
	for i := 0; i < n; i += openMeteoStep {
		samples = append(samples, weather.ForecastSample{
			Timestamp:   time.Unix(h.Time[i], 0).In(zone),
			Temperature: h.Temperature[i],
			Humidity:    h.Humidity[i],
			WindSpeed:   h.WindSpeed[i],
			Description: describeOpenMeteoCode(h.WeatherCode[i]),
		})
	}

	return weather.Forecast{Samples: samples, Zone: zone}, nil
}

func (p *OpenMeteoProvider) get(ctx context.Context, coords weather.Coordinates, extra func(url.Values)) (openMeteoPayload, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
		values.Set("wind_speed_unit", "ms")
		values.Set("timezone", "auto")
		values.Set("timeformat", "unixtime")
		extra(values)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	var payload openMeteoPayload
	body, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return payload, fmt.Errorf("openmeteo: %w", err)
	}
	if err := decodeJSON(body, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// describeOpenMeteoCode maps WMO weather codes onto OpenWeatherMap-style descriptions
// so that icons and advisories behave the same for both providers.
func describeOpenMeteoCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code == 1:
		return "few clouds"
	case code == 2:
		return "scattered clouds"
	case code == 3:
		return "broken clouds"
	case code == 45 || code == 48:
		return "mist"
	case code >= 51 && code <= 57:
		return "light rain"
	case code >= 61 && code <= 67:
		return "rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "snow"
	case code >= 80 && code <= 82:
		return "shower rain"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
