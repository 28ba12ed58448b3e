// Package reporting renders a generated series and its metrics as
// Markdown and CSV files.
package reporting

import (
	"time"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/metrics"
)

// Report is the flattened view of one series ready for rendering.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	UserName    string
	ProjectID   string

	// Identity
	SeriesID string
	Params   domain.Params

	// Data summary
	RecordCount int
	DateStart   time.Time
	DateEnd     time.Time

	// Metrics; nil when the series is too short to summarize
	Metrics *domain.Metrics

	// Qualitative labels
	VolatilityLevel string
	TrendDirection  string
	StabilityLabel  string
	AmplitudeEffect string
	WaveSpeed       string
	DriftBias       string

	// Full series for the CSV dump
	Series domain.Series
}

// Build assembles a report from a stored series record.
// userName and projectID may be empty for CLI-generated reports.
func Build(rec *domain.SeriesRecord, userName, projectID string, now time.Time) *Report {
	r := &Report{
		GeneratedAt: now,
		UserName:    userName,
		ProjectID:   projectID,
		SeriesID:    rec.SeriesID,
		Params:      rec.Params,
		RecordCount: len(rec.Series),
		Series:      rec.Series,

		AmplitudeEffect: metrics.AmplitudeEffect(rec.Params.Amplitude),
		WaveSpeed:       metrics.WaveSpeed(rec.Params.Frequency),
		DriftBias:       metrics.DriftBias(rec.Params.Drift),
	}

	if len(rec.Series) > 0 {
		r.DateStart = rec.Series[0].Date
		r.DateEnd = rec.Series[len(rec.Series)-1].Date
	}

	if m := metrics.Compute(rec.Series); m != nil {
		r.Metrics = m
		r.VolatilityLevel = metrics.VolatilityLevel(m.AnnualizedVol)
		r.TrendDirection = metrics.TrendDirection(m.Slope)
		r.StabilityLabel = metrics.StabilityLabel(m.Stability)
	}

	return r
}
