package metrics

import "crypto-volatility-lab/internal/domain"

// Classification thresholds for the dashboard metric cards.
const (
	volatilityHighAbove     = 0.6
	volatilityModerateAbove = 0.3

	trendSlopePerDay = 5.0

	stabilityStableAbove = 70.0
	stabilityMixedAbove  = 40.0
)

// VolatilityLevel labels annualized volatility as High, Moderate or Low.
func VolatilityLevel(annualizedVol float64) string {
	switch {
	case annualizedVol > volatilityHighAbove:
		return domain.VolatilityHigh
	case annualizedVol > volatilityModerateAbove:
		return domain.VolatilityModerate
	default:
		return domain.VolatilityLow
	}
}

// TrendDirection labels the regression slope as Bullish, Bearish or Neutral.
func TrendDirection(slope float64) string {
	switch {
	case slope > trendSlopePerDay:
		return domain.TrendBullish
	case slope < -trendSlopePerDay:
		return domain.TrendBearish
	default:
		return domain.TrendNeutral
	}
}

// StabilityLabel labels the 0-100 stability score.
func StabilityLabel(stability float64) string {
	switch {
	case stability > stabilityStableAbove:
		return domain.StabilityStable
	case stability > stabilityMixedAbove:
		return domain.StabilityMixed
	default:
		return domain.StabilityUnstable
	}
}

// AmplitudeEffect describes how strongly the amplitude parameter moves
// prices: Small below 0.5, Medium below 1.2, otherwise Large.
func AmplitudeEffect(amplitude float64) string {
	switch {
	case amplitude < 0.5:
		return "Small"
	case amplitude < 1.2:
		return "Medium"
	default:
		return "Large"
	}
}

// WaveSpeed describes the frequency parameter: Slow below 1.5, Medium
// below 3.0, otherwise Fast.
func WaveSpeed(frequency float64) string {
	switch {
	case frequency < 1.5:
		return "Slow"
	case frequency < 3.0:
		return "Medium"
	default:
		return "Fast"
	}
}

// DriftBias describes the drift parameter: Bearish below -0.2, Neutral
// below 0.2, otherwise Bullish.
func DriftBias(drift float64) string {
	switch {
	case drift < -0.2:
		return domain.TrendBearish
	case drift < 0.2:
		return domain.TrendNeutral
	default:
		return domain.TrendBullish
	}
}
