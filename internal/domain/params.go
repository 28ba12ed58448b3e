package domain

import (
	"errors"
	"fmt"
)

// Pattern selects the price model used by the generator.
type Pattern string

const (
	// PatternWave produces a closed-form sinusoidal price.
	PatternWave Pattern = "wave"
	// PatternRandom produces a path-dependent random walk with jumps.
	PatternRandom Pattern = "random"
)

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool {
	return p == PatternWave || p == PatternRandom
}

// Parameter ranges. Values outside these ranges are a caller contract
// violation and are rejected by Params.Validate before generation.
const (
	AmplitudeMin = 0.1
	AmplitudeMax = 2.0
	FrequencyMin = 0.1
	FrequencyMax = 5.0
	DriftMin     = -1.0
	DriftMax     = 1.0
	NoiseMin     = 0.0
	NoiseMax     = 1.0
	LengthMin    = 30
	LengthMax    = 365
)

// ErrInvalidParams is returned when a parameter is outside its valid range.
var ErrInvalidParams = errors.New("invalid parameters")

// Params is the immutable input of one generation call. Seed is the base
// seed rolled by the session; the PRNG seed is derived from hashing the
// full tuple, so any field change yields a different series.
type Params struct {
	Pattern   Pattern // wave | random
	Amplitude float64 // swing size, [0.1, 2.0]
	Frequency float64 // oscillation speed (wave only), [0.1, 5.0]
	Drift     float64 // directional bias, [-1.0, 1.0]
	Noise     float64 // random perturbation, [0.0, 1.0]
	Length    int     // simulated day count, [30, 365]
	Seed      int64   // base seed
}

// DefaultParams returns the parameter set the dashboard starts with.
func DefaultParams() Params {
	return Params{
		Pattern:   PatternWave,
		Amplitude: 0.5,
		Frequency: 1.0,
		Drift:     0.0,
		Noise:     0.3,
		Length:    90,
	}
}

// Validate checks every field against its valid range.
func (p Params) Validate() error {
	if !p.Pattern.Valid() {
		return fmt.Errorf("%w: pattern %q must be %q or %q", ErrInvalidParams, p.Pattern, PatternWave, PatternRandom)
	}
	if p.Amplitude < AmplitudeMin || p.Amplitude > AmplitudeMax {
		return fmt.Errorf("%w: amplitude %g outside [%g, %g]", ErrInvalidParams, p.Amplitude, AmplitudeMin, AmplitudeMax)
	}
	if p.Frequency < FrequencyMin || p.Frequency > FrequencyMax {
		return fmt.Errorf("%w: frequency %g outside [%g, %g]", ErrInvalidParams, p.Frequency, FrequencyMin, FrequencyMax)
	}
	if p.Drift < DriftMin || p.Drift > DriftMax {
		return fmt.Errorf("%w: drift %g outside [%g, %g]", ErrInvalidParams, p.Drift, DriftMin, DriftMax)
	}
	if p.Noise < NoiseMin || p.Noise > NoiseMax {
		return fmt.Errorf("%w: noise %g outside [%g, %g]", ErrInvalidParams, p.Noise, NoiseMin, NoiseMax)
	}
	if p.Length < LengthMin || p.Length > LengthMax {
		return fmt.Errorf("%w: length %d outside [%d, %d]", ErrInvalidParams, p.Length, LengthMin, LengthMax)
	}
	return nil
}

// WithSeed returns a copy of p with a different base seed.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = seed
	return p
}
