package weather

// DefaultIcon is shown for descriptions missing from the icon table.
const DefaultIcon = "🌦️"

var conditionIcons = map[string]string{
	"clear sky":        "☀️",
	"few clouds":       "🌤️",
	"scattered clouds": "⛅",
	"broken clouds":    "☁️",
	"shower rain":      "🌧️",
	"rain":             "🌦️",
	"thunderstorm":     "⛈️",
	"snow":             "❄️",
	"mist":             "🌫️",
}

// Icon maps a provider description to its emoji.
func Icon(description string) string {
	if icon, ok := conditionIcons[description]; ok {
		return icon
	}
	return DefaultIcon
}
