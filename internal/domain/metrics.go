package domain

// Metrics are scalar summary statistics derived from one series.
// Recomputed fresh on every series change, never cached across series.
type Metrics struct {
	DailyVol      float64 // sample stdev of daily returns
	AnnualizedVol float64 // DailyVol * sqrt(252)
	AvgPrice      float64 // mean close price
	Slope         float64 // least-squares price trend, $/day
	Stability     float64 // clamp(100 - AnnualizedVol*100, 0, 100)
}

// Qualitative labels shown on the dashboard metric cards.
const (
	VolatilityHigh     = "High"
	VolatilityModerate = "Moderate"
	VolatilityLow      = "Low"

	TrendBullish = "Bullish"
	TrendBearish = "Bearish"
	TrendNeutral = "Neutral"

	StabilityStable   = "Stable"
	StabilityMixed    = "Mixed"
	StabilityUnstable = "Unstable"
)
