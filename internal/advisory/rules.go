// Package advisory turns current conditions into human-readable recommendations.
//
// Independent evaluators (lifestyle, health) emit every message whose rule matches.
// Tiered evaluators (activity, clothing) walk an ordered rule table and emit only the first
// match; each table ends with an unconditional rule so exactly one message is produced.
package advisory

import (
	"strings"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// Conditions is the subset of current weather the rules look at.
type Conditions struct {
	Description string
	Temperature float64 // °C
	Humidity    float64 // %
	WindSpeed   float64 // m/s
}

// Rule pairs a predicate with the message it produces.
type Rule struct {
	Name    string
	When    func(Conditions) bool
	Message string
}

func always(Conditions) bool { return true }

func isRainy(c Conditions) bool {
	return common.HasAny(strings.ToLower(c.Description), "rain", "shower")
}

var lifestyleRules = []Rule{
	{
		Name:    "humid-skin-care",
		When:    func(c Conditions) bool { return c.Humidity > 80 },
		Message: "Use oil-control products to prevent skin irritation.",
	},
	{
		Name:    "hot-hydration",
		When:    func(c Conditions) bool { return c.Temperature > 30 },
		Message: "Stay hydrated and avoid outdoor workouts during peak hours.",
	},
	{
		Name:    "general",
		When:    always,
		Message: "Suitable for car washing and indoor activities.",
	},
}

var activityRules = []Rule{
	{
		Name:    "rain-indoor",
		When:    isRainy,
		Message: "☔ It's rainy. Indoor activities like reading or watching movies are recommended.",
	},
	{
		Name:    "heat-caution",
		When:    func(c Conditions) bool { return c.Temperature > 30 },
		Message: "🌞 It's hot. Stay hydrated and avoid strenuous outdoor activities.",
	},
	{
		Name:    "windy",
		When:    func(c Conditions) bool { return c.WindSpeed > 8 },
		Message: "💨 It's windy. Consider activities like kite flying or windsurfing.",
	},
	{
		Name:    "outdoors",
		When:    always,
		Message: "🌳 Weather is perfect for a picnic, jogging, or cycling. Enjoy the outdoors!",
	},
}

var clothingRules = []Rule{
	{
		Name:    "warm",
		When:    func(c Conditions) bool { return c.Temperature < 15 },
		Message: "🧥 It's cold. Wear warm clothes like jackets, sweaters, and scarves.",
	},
	{
		Name:    "light",
		When:    func(c Conditions) bool { return c.Temperature > 30 },
		Message: "🩳 It's hot. Opt for light, breathable clothing like shorts and T-shirts.",
	},
	{
		Name:    "rain-gear",
		When:    isRainy,
		Message: "☂️ It's rainy. Carry an umbrella and wear waterproof clothing.",
	},
	{
		Name:    "casual",
		When:    always,
		Message: "👖 The weather is pleasant. Casual wear will be comfortable today.",
	},
}

var healthRules = []Rule{
	{
		Name:    "high-humidity",
		When:    func(c Conditions) bool { return c.Humidity > 80 },
		Message: "💧 High Humidity: Stay cool and drink water. Avoid prolonged outdoor exposure.",
	},
	{
		Name:    "heat",
		When:    func(c Conditions) bool { return c.Temperature > 35 },
		Message: "🌞 Heat Advisory: Use sunscreen and stay hydrated to avoid heat exhaustion.",
	},
	{
		Name:    "cold",
		When:    func(c Conditions) bool { return c.Temperature < 10 },
		Message: "🥶 Cold Advisory: Wear layers to prevent cold-related illnesses.",
	},
	{
		Name:    "air-quality",
		When:    always,
		Message: "🫁 For sensitive individuals, monitor air quality before outdoor activities.",
	},
}

// FirstMatch returns the message of the first rule that matches c, and false when none does.
func FirstMatch(rules []Rule, c Conditions) (string, bool) {
	for _, r := range rules {
		if r.When(c) {
			return r.Message, true
		}
	}
	return "", false
}

// AllMatches returns the messages of every matching rule in table order.
func AllMatches(rules []Rule, c Conditions) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.When(c) {
			out = append(out, r.Message)
		}
	}
	return out
}

// Lifestyle returns general tips; the last one is always present.
func Lifestyle(c Conditions) []string {
	return AllMatches(lifestyleRules, c)
}

// Health returns every applicable health advisory plus the air-quality reminder.
func Health(c Conditions) []string {
	return AllMatches(healthRules, c)
}

// Activity returns exactly one outdoor activity suggestion.
func Activity(c Conditions) string {
	msg, _ := FirstMatch(activityRules, c)
	return msg
}

// Clothing returns exactly one clothing suggestion.
func Clothing(c Conditions) string {
	msg, _ := FirstMatch(clothingRules, c)
	return msg
}
