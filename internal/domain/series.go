package domain

import "time"

// SeriesStart is the date of index 0 in every generated series.
var SeriesStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PriceRecord is one simulated trading day.
// high >= price >= low is not guaranteed by construction; low is floored
// at 500 and price at 1000.
type PriceRecord struct {
	Date   time.Time // UTC midnight, consecutive calendar days
	Price  float64   // close price, rounded to 2 decimals, >= 1000
	High   float64   // intraday high, rounded to 2 decimals
	Low    float64   // intraday low, rounded to 2 decimals, >= 500
	Volume float64   // traded volume, rounded to nearest integer, >= 500
}

// Series is an ordered day-by-day price sequence produced by one
// generation call. It is fully replaced, never mutated, on any
// parameter or seed change.
type Series []PriceRecord

// Prices returns the close prices in chronological order.
func (s Series) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, r := range s {
		prices[i] = r.Price
	}
	return prices
}

// SeriesRecord couples a generated series with the exact parameters that
// produced it, so the series can be reproduced and verified later.
type SeriesRecord struct {
	SeriesID    string // deterministic hash of Params, hex, 64 chars
	Params      Params // parameter tuple used for generation
	Series      Series // generated records
	GeneratedAt int64  // Unix timestamp in milliseconds
}
