package verification

import (
	"context"
	"errors"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/generator"
	"crypto-volatility-lab/internal/seedhash"
	"crypto-volatility-lab/internal/storage"
)

// ErrSeriesNotFound is returned when the series ID doesn't exist.
var ErrSeriesNotFound = errors.New("series not found")

// ReplayVerifier implements Verifier against a series store.
type ReplayVerifier struct {
	seriesStore storage.SeriesStore
}

// NewReplayVerifier creates a new ReplayVerifier.
func NewReplayVerifier(seriesStore storage.SeriesStore) *ReplayVerifier {
	return &ReplayVerifier{seriesStore: seriesStore}
}

var _ Verifier = (*ReplayVerifier)(nil)

// VerifySeries verifies a single series by regenerating it.
func (v *ReplayVerifier) VerifySeries(ctx context.Context, seriesID string) (*VerificationResult, error) {
	stored, err := v.seriesStore.GetByID(ctx, seriesID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	return VerifyRecord(stored), nil
}

// VerifyRecord checks a series record without touching a store. It confirms
// the stored ID is the hash of the stored parameters, then regenerates and
// compares day by day.
func VerifyRecord(stored *domain.SeriesRecord) *VerificationResult {
	var divergences []FieldDivergence

	if want := seedhash.SeriesID(stored.Params); stored.SeriesID != want {
		divergences = append(divergences, FieldDivergence{
			Day:      -1,
			Field:    "SeriesID",
			Expected: stored.SeriesID,
			Actual:   want,
		})
	}

	regenerated := generator.Generate(stored.Params)
	divergences = append(divergences, CompareSeries(stored.Series, regenerated)...)

	return &VerificationResult{
		SeriesID:    stored.SeriesID,
		Match:       len(divergences) == 0,
		Divergences: divergences,
	}
}
