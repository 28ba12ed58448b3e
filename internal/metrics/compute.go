// Package metrics computes scalar summary statistics from a generated
// price series. Computation is a pure aggregation over the full series on
// every call; nothing is cached across series changes.
package metrics

import (
	"math"

	"crypto-volatility-lab/internal/domain"
)

// TradingDaysPerYear annualizes the daily return volatility.
const TradingDaysPerYear = 252

// Compute calculates all metrics from a series.
// Returns nil when the series has fewer than 2 records: a single day has
// no returns, so there is nothing to summarize and the caller skips
// metric display.
func Compute(series domain.Series) *domain.Metrics {
	if len(series) < 2 {
		return nil
	}

	prices := series.Prices()
	returns := computeReturns(prices)

	dailyVol := computeStddev(returns, computeMean(returns))
	annualizedVol := dailyVol * math.Sqrt(TradingDaysPerYear)

	return &domain.Metrics{
		DailyVol:      dailyVol,
		AnnualizedVol: annualizedVol,
		AvgPrice:      computeMean(prices),
		Slope:         computeSlope(prices),
		Stability:     clamp(100-annualizedVol*100, 0, 100),
	}
}

// computeReturns calculates simple daily returns r[i] = (p[i]-p[i-1])/p[i-1].
func computeReturns(prices []float64) []float64 {
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}
	return returns
}

// computeMean calculates the arithmetic mean.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeStddev calculates sample standard deviation (n-1 denominator).
// A single sample has no spread estimate and yields 0.
func computeStddev(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// computeSlope calculates the least-squares linear regression slope of
// values against their 0-based index.
func computeSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	xMean := float64(n-1) / 2
	yMean := computeMean(values)

	num := 0.0
	den := 0.0
	for i, v := range values {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
