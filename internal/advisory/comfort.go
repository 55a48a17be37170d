package advisory

import "fmt"

// Level hints how a banner should be styled.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// ComfortBanner is the display form of a comfort score.
type ComfortBanner struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
	Level Level   `json:"level"`
	Text  string  `json:"text"`
}

// Banner classifies a comfort score: 8 and above is excellent, 5 and above moderate.
func Banner(score float64) ComfortBanner {
	var (
		label, emoji string
		level        Level
	)
	switch {
	case score >= 8:
		label, emoji, level = "Excellent", "😊", LevelSuccess
	case score >= 5:
		label, emoji, level = "Moderate", "🙂", LevelInfo
	default:
		label, emoji, level = "Uncomfortable", "😓", LevelWarning
	}

	return ComfortBanner{
		Score: score,
		Label: label,
		Level: level,
		Text:  fmt.Sprintf("Comfort Level: %.1f / 10 %s (%s)", score, emoji, label),
	}
}

// Advice groups every evaluator's output for one set of conditions.
type Advice struct {
	Lifestyle []string      `json:"lifestyle"`
	Comfort   ComfortBanner `json:"comfort"`
	Activity  string        `json:"activity"`
	Clothing  string        `json:"clothing"`
	Health    []string      `json:"health"`
}

// Evaluate runs all evaluators. comfortScore is the already computed comfort index.
func Evaluate(c Conditions, comfortScore float64) Advice {
	return Advice{
		Lifestyle: Lifestyle(c),
		Comfort:   Banner(comfortScore),
		Activity:  Activity(c),
		Clothing:  Clothing(c),
		Health:    Health(c),
	}
}
