package weather

import (
	"math"
	"time"
)

// FishingScore estimates how favorable the observed conditions are for
// fishing, on a 0-100 scale. The rule is fixed and deterministic.
//
// The pressure (+10) and temperature (+5) terms are unconditional constants:
// the trend-based factors they stand in for were never built. They are kept
// as-is deliberately; changing them changes every score the product has ever
// shown. TODO(product): replace the flat bonuses with real pressure-trend and
// temperature-suitability factors.
//
// The function does no input validation; NaN inputs propagate to the result.
func FishingScore(obs Observation) int {
	score := 50.0

	// Pressure-trend placeholder.
	score += 10

	// Temperature-suitability placeholder.
	score += 5

	// Moderate wind is workable, strong wind is not.
	if obs.WindSpeed < 10 {
		score += 10
	} else if obs.WindSpeed > 20 {
		score -= 15
	}

	// Light rain helps, heavy rain hurts.
	if obs.Precipitation > 0 && obs.Precipitation < 2 {
		score += 5
	} else if obs.Precipitation >= 2 {
		score -= 10
	}

	return int(math.Max(0, math.Min(100, score)))
}

// ScoreLabel maps a score to its qualitative band.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	case score >= 20:
		return "Below average"
	default:
		return "Poor"
	}
}

// compassPoints are the 16-point compass names, clockwise from north.
var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint converts wind direction degrees to its 16-point compass name.
func CompassPoint(degrees float64) string {
	index := int(math.Round(degrees/22.5)) % 16
	if index < 0 {
		index += 16
	}
	return compassPoints[index]
}

// MoonPhase approximates the 0-1 lunar phase for a date using a fixed
// 29.5-day cycle anchored at the Unix epoch. 0 is a new moon, 0.5 full.
func MoonPhase(date time.Time) float64 {
	days := float64(date.UnixMilli()) / 86400000.0
	return math.Mod(days, 29.5) / 29.5
}

// MoonPhaseName returns the text description for a 0-1 moon phase value.
func MoonPhaseName(phase float64) string {
	switch {
	case phase == 0:
		return "New Moon"
	case phase < 0.25:
		return "Waxing Crescent"
	case phase == 0.25:
		return "First Quarter"
	case phase < 0.5:
		return "Waxing Gibbous"
	case phase == 0.5:
		return "Full Moon"
	case phase < 0.75:
		return "Waning Gibbous"
	case phase == 0.75:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
