// Package render formats dashboard reports for terminals and plain-text clients.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Text writes the report as a sectioned plain-text dashboard.
func Text(w io.Writer, r *weather.Report) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	p("Weather Dashboard 🌤️  %s", r.Query)
	p("Location Coordinates: Latitude %s, Longitude %s", num(r.Coordinates.Latitude), num(r.Coordinates.Longitude))
	p("")

	c := r.Current
	p("🌍 Current Weather")
	p("%s %s", r.Icon, common.Capitalize(c.Description))
	p("Temperature: %s°C (Feels like %s°C)", num(c.Temperature), num(c.FeelsLike))
	p("Humidity: %s%%", num(c.Humidity))
	p("Pressure: %s hPa", num(c.Pressure))
	p("Wind Speed: %s m/s", num(c.WindSpeed))
	if !c.Sunrise.IsZero() {
		p("Sunrise: %s", c.Sunrise.Format("15:04"))
	}
	if !c.Sunset.IsZero() {
		p("Sunset: %s", c.Sunset.Format("15:04"))
	}
	p("")

	a := r.Advice
	p("💡 Lifestyle Tips")
	for _, tip := range a.Lifestyle {
		p("• %s", tip)
	}
	p("")

	p("🌟 Comfort Index")
	p("%s", a.Comfort.Text)
	p("")

	p("👕 Clothing Suggestions")
	p("%s", a.Clothing)
	p("")

	p("🩺 Health Advisory")
	for _, h := range a.Health {
		p("%s", h)
	}
	p("")

	p("📅 5-Day Weather Forecast")
	if len(r.Daily) == 0 {
		p("No forecast data available.")
	}
	for _, d := range r.Daily {
		p("%s: %s %s, Avg Temp: %.1f°C", d.Date.Format("Monday, 02 Jan"), weather.Icon(d.Condition),
			common.Capitalize(d.Condition), d.AverageTemperature)
	}
	p("")

	p("📈 Trends")
	trendLine(p, "🌡️ Temperature", r.Trends.Temperature)
	trendLine(p, "💧 Humidity", r.Trends.Humidity)
	trendLine(p, "💨 Wind Speed", r.Trends.WindSpeed)
	p("")

	p("🚴 Outdoor Activity Suggestions")
	p("%s", a.Activity)

	return bw.Flush()
}

func trendLine(p func(string, ...any), title string, s weather.TrendSeries) {
	if s.Max == nil {
		p("%s: no data", title)
		return
	}
	line := fmt.Sprintf("%s: max %.1f %s at %s", title, s.Max.Value, s.Unit, s.Max.Time.Format("Mon 15:04"))
	if s.Min != nil {
		line += fmt.Sprintf(", min %.1f %s at %s", s.Min.Value, s.Unit, s.Min.Time.Format("Mon 15:04"))
	}
	p("%s", line)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
