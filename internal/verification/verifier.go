// Package verification checks that stored series match a fresh regeneration
// from their parameters. Generation is fully deterministic, so comparisons
// are exact with no float tolerance.
package verification

import (
	"context"

	"crypto-volatility-lab/internal/domain"
)

// FieldDivergence represents a mismatch between stored and regenerated values.
type FieldDivergence struct {
	Day      int         // 0-based day index, -1 for record-level fields
	Field    string      // field name
	Expected interface{} // stored value
	Actual   interface{} // regenerated value
}

// VerificationResult contains the result of verifying a single series.
type VerificationResult struct {
	SeriesID    string            // verified series ID
	Match       bool              // true if all fields match
	Divergences []FieldDivergence // list of divergent fields
}

// VerificationReport contains results for batch verification.
type VerificationReport struct {
	TotalSeries     int                  // total series verified
	MatchedSeries   int                  // series that matched exactly
	DivergentSeries int                  // series with divergences
	Results         []VerificationResult // individual results
}

// Verifier interface for series replay verification.
type Verifier interface {
	// VerifySeries verifies a single series by ID. It loads the stored
	// record, regenerates from the same parameters, and compares every
	// record field.
	VerifySeries(ctx context.Context, seriesID string) (*VerificationResult, error)
}

// CompareSeries compares a stored series against a regenerated one and
// returns divergences. A length mismatch short-circuits the per-day walk.
func CompareSeries(stored, regenerated domain.Series) []FieldDivergence {
	var divergences []FieldDivergence

	if len(stored) != len(regenerated) {
		divergences = append(divergences, FieldDivergence{
			Day:      -1,
			Field:    "Length",
			Expected: len(stored),
			Actual:   len(regenerated),
		})
		return divergences
	}

	for i := range stored {
		s, r := stored[i], regenerated[i]

		if !s.Date.Equal(r.Date) {
			divergences = append(divergences, FieldDivergence{
				Day: i, Field: "Date", Expected: s.Date, Actual: r.Date,
			})
		}
		if s.Price != r.Price {
			divergences = append(divergences, FieldDivergence{
				Day: i, Field: "Price", Expected: s.Price, Actual: r.Price,
			})
		}
		if s.High != r.High {
			divergences = append(divergences, FieldDivergence{
				Day: i, Field: "High", Expected: s.High, Actual: r.High,
			})
		}
		if s.Low != r.Low {
			divergences = append(divergences, FieldDivergence{
				Day: i, Field: "Low", Expected: s.Low, Actual: r.Low,
			})
		}
		if s.Volume != r.Volume {
			divergences = append(divergences, FieldDivergence{
				Day: i, Field: "Volume", Expected: s.Volume, Actual: r.Volume,
			})
		}
	}

	return divergences
}
