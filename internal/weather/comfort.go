package weather

import "math"

const (
	comfortOptimumC     = 22.0
	comfortTempDivisor  = 2.0
	comfortHumidDivisor = 20.0
	comfortWindDivisor  = 3.0
	comfortMin          = 0.0
	comfortMax          = 10.0
)

// ComfortIndex scores how pleasant the conditions feel on a 0-10 scale.
// Deviation from 22°C, humidity and wind speed are linear penalties; the result is
// clamped to [0, 10] and rounded to one decimal, halves to even.
func ComfortIndex(tempC, humidityPct, windSpeedMS float64) float64 {
	score := 10 -
		math.Abs(tempC-comfortOptimumC)/comfortTempDivisor -
		humidityPct/comfortHumidDivisor -
		windSpeedMS/comfortWindDivisor

	// NaN inputs compare false everywhere; treat them as the worst case.
	if math.IsNaN(score) {
		return comfortMin
	}
	score = math.Max(comfortMin, math.Min(comfortMax, score))
	return math.RoundToEven(score*10) / 10
}
