// Package seedhash derives deterministic identifiers and PRNG seeds from
// parameter tuples. Hashing the full tuple (including the base seed) means
// any single field change reseeds the generator, while identical tuples
// always reproduce the same series.
package seedhash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"crypto-volatility-lab/internal/domain"
)

// Sum computes the SHA256 digest of the parameter tuple.
// Formula: SHA256(pattern|amplitude|frequency|drift|noise|length|seed)
// Floats are formatted with strconv.FormatFloat(v, 'g', -1, 64) so the
// encoding round-trips exactly and the digest is stable across runs.
func Sum(p domain.Params) [32]byte {
	data := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d",
		p.Pattern,
		formatFloat(p.Amplitude),
		formatFloat(p.Frequency),
		formatFloat(p.Drift),
		formatFloat(p.Noise),
		p.Length,
		p.Seed,
	)
	return sha256.Sum256([]byte(data))
}

// SeriesID returns the hex-encoded tuple digest (64 characters).
// It identifies a series in stores, chart caches and reports.
func SeriesID(p domain.Params) string {
	sum := Sum(p)
	return hex.EncodeToString(sum[:])
}

// PRNGSeed returns the seed for the generator's random source: the first
// 8 digest bytes as a big-endian integer, masked non-negative.
func PRNGSeed(p domain.Params) int64 {
	sum := Sum(p)
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
