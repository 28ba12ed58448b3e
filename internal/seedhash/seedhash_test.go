package seedhash

import (
	"testing"

	"crypto-volatility-lab/internal/domain"
)

func baseParams() domain.Params {
	return domain.Params{
		Pattern:   domain.PatternWave,
		Amplitude: 0.5,
		Frequency: 1.0,
		Drift:     0.0,
		Noise:     0.3,
		Length:    90,
		Seed:      42,
	}
}

func TestSeriesID_Determinism(t *testing.T) {
	p := baseParams()

	results := make([]string, 10)
	for i := 0; i < 10; i++ {
		results[i] = SeriesID(p)
	}

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("Determinism failed: results[%d]=%s != results[0]=%s", i, results[i], results[0])
		}
	}

	if len(results[0]) != 64 {
		t.Errorf("SeriesID() length = %d, want 64", len(results[0]))
	}
}

func TestSeriesID_DifferentInputs(t *testing.T) {
	base := SeriesID(baseParams())

	tests := []struct {
		name   string
		mutate func(*domain.Params)
	}{
		{"pattern", func(p *domain.Params) { p.Pattern = domain.PatternRandom }},
		{"amplitude", func(p *domain.Params) { p.Amplitude = 0.6 }},
		{"frequency", func(p *domain.Params) { p.Frequency = 2.0 }},
		{"drift", func(p *domain.Params) { p.Drift = 0.5 }},
		{"noise", func(p *domain.Params) { p.Noise = 0.4 }},
		{"length", func(p *domain.Params) { p.Length = 91 }},
		{"seed", func(p *domain.Params) { p.Seed = 43 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)
			if SeriesID(p) == base {
				t.Errorf("Different %s should produce different series ID", tt.name)
			}
		})
	}
}

func TestPRNGSeed_NonNegative(t *testing.T) {
	p := baseParams()
	for seed := int64(0); seed < 1000; seed++ {
		if got := PRNGSeed(p.WithSeed(seed)); got < 0 {
			t.Fatalf("PRNGSeed() = %d for base seed %d, want non-negative", got, seed)
		}
	}
}

func TestPRNGSeed_MatchesSum(t *testing.T) {
	p := baseParams()
	if PRNGSeed(p) != PRNGSeed(p) {
		t.Error("PRNGSeed() not deterministic")
	}
	if PRNGSeed(p) == PRNGSeed(p.WithSeed(p.Seed+1)) {
		t.Error("Different base seed should produce different PRNG seed")
	}
}
