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

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(cfg HTTPClientConfig, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpCfg: cfg,
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// owmCondition is the shared shape of the "weather" array entries.
type owmCondition struct {
	Description string `json:"description"`
}

type owmCurrentPayload struct {
	Weather []owmCondition `json:"weather"`
	Main    *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Sys *struct {
		Sunrise *int64 `json:"sunrise"`
		Sunset  *int64 `json:"sunset"`
	} `json:"sys"`
	Timezone *int `json:"timezone"`
}

type owmForecastPayload struct {
	List *[]struct {
		Dt   int64 `json:"dt"`
		Main *struct {
			Temp     *float64 `json:"temp"`
			Humidity *float64 `json:"humidity"`
		} `json:"main"`
		Wind *struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
	City struct {
		Timezone *int `json:"timezone"`
	} `json:"city"`
}

// FetchCurrent retrieves current conditions for coords in metric units.
func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, coords weather.Coordinates) (weather.CurrentWeather, error) {
	body, err := p.get(ctx, "/weather", coords)
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	var payload owmCurrentPayload
	if err := decodeJSON(body, &payload); err != nil {
		return weather.CurrentWeather{}, err
	}

	if len(payload.Weather) == 0 {
		return weather.CurrentWeather{}, fmt.Errorf("%w: current weather has no conditions", weather.ErrDataShape)
	}
	m := payload.Main
	if m == nil || m.Temp == nil || m.FeelsLike == nil || m.Humidity == nil || m.Pressure == nil {
		return weather.CurrentWeather{}, fmt.Errorf("%w: current weather is missing main readings", weather.ErrDataShape)
	}
	if payload.Wind == nil || payload.Wind.Speed == nil {
		return weather.CurrentWeather{}, fmt.Errorf("%w: current weather is missing wind speed", weather.ErrDataShape)
	}
	if payload.Sys == nil || payload.Sys.Sunrise == nil || payload.Sys.Sunset == nil {
		return weather.CurrentWeather{}, fmt.Errorf("%w: current weather is missing sunrise or sunset", weather.ErrDataShape)
	}

	zone := zoneFromOffset(payload.Timezone)

	return weather.CurrentWeather{
		Description: payload.Weather[0].Description,
		Temperature: *m.Temp,
		FeelsLike:   *m.FeelsLike,
		Humidity:    *m.Humidity,
		Pressure:    *m.Pressure,
		WindSpeed:   *payload.Wind.Speed,
		Sunrise:     unixIn(*payload.Sys.Sunrise, zone),
		Sunset:      unixIn(*payload.Sys.Sunset, zone),
		Zone:        zone,
	}, nil
}

// FetchForecast retrieves the 5 day / 3 hour forecast window for coords.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, coords weather.Coordinates) (weather.Forecast, error) {
	body, err := p.get(ctx, "/forecast", coords)
	if err != nil {
		return weather.Forecast{}, err
	}

	var payload owmForecastPayload
	if err := decodeJSON(body, &payload); err != nil {
		return weather.Forecast{}, err
	}
	if payload.List == nil {
		return weather.Forecast{}, fmt.Errorf("%w: forecast has no list", weather.ErrDataShape)
	}

	zone := zoneFromOffset(payload.City.Timezone)
	samples := make([]weather.ForecastSample, 0, len(*payload.List))

	for i, item := range *payload.List {
		if item.Dt == 0 || len(item.Weather) == 0 ||
			item.Main == nil || item.Main.Temp == nil || item.Main.Humidity == nil ||
			item.Wind == nil || item.Wind.Speed == nil {
			return weather.Forecast{}, fmt.Errorf("%w: forecast entry %d is incomplete", weather.ErrDataShape, i)
		}

		samples = append(samples, weather.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).In(zone),
			Temperature: *item.Main.Temp,
			Humidity:    *item.Main.Humidity,
			WindSpeed:   *item.Wind.Speed,
			Description: item.Weather[0].Description,
		})
	}

	return weather.Forecast{Samples: samples, Zone: zone}, nil
}

func (p *OpenWeatherProvider) get(ctx context.Context, path string, coords weather.Coordinates) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: openweather api key is not configured", weather.ErrService)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	body, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("openweather %s: %w", path, err)
	}
	return body, nil
}

// unixIn converts epoch seconds to zone, keeping 0 as the zero time.
func unixIn(sec int64, zone *time.Location) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).In(zone)
}

// zoneFromOffset builds a fixed zone from an offset in seconds east of UTC.
func zoneFromOffset(offset *int) *time.Location {
	if offset == nil || *offset == 0 {
		return time.UTC
	}
	return time.FixedZone(formatOffset(*offset), *offset)
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
