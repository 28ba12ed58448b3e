package charts

import (
	"bytes"
	"errors"
	"testing"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/generator"
	"crypto-volatility-lab/internal/seedhash"
)

func testRecord(t *testing.T) *domain.SeriesRecord {
	t.Helper()
	p := domain.DefaultParams().WithSeed(42)
	return &domain.SeriesRecord{
		SeriesID: seedhash.SeriesID(p),
		Params:   p,
		Series:   generator.Generate(p),
	}
}

// PNG files start with an 8-byte signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRender_AllKinds(t *testing.T) {
	cacheReset()
	rec := testRecord(t)

	for _, kind := range []string{KindPrice, KindRange, KindVolume} {
		t.Run(kind, func(t *testing.T) {
			img, err := Render(kind, rec)
			if err != nil {
				t.Fatalf("Render(%s) failed: %v", kind, err)
			}
			if len(img) == 0 {
				t.Fatalf("Render(%s) produced empty image", kind)
			}
			if !bytes.HasPrefix(img, pngMagic) {
				t.Errorf("Render(%s) output is not a PNG", kind)
			}
		})
	}
}

func TestRender_EmptySeries(t *testing.T) {
	cacheReset()

	if _, err := Render(KindPrice, nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries for nil record, got %v", err)
	}
	if _, err := Render(KindPrice, &domain.SeriesRecord{SeriesID: "x"}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries for empty series, got %v", err)
	}
}

func TestRender_UnknownKind(t *testing.T) {
	cacheReset()

	_, err := Render("sparkline", testRecord(t))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRender_Cached(t *testing.T) {
	cacheReset()
	rec := testRecord(t)

	first, err := Render(KindPrice, rec)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := Render(KindPrice, rec)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached render differs from first render")
	}

	// The cached copy is defensive: mutating the returned slice must not
	// poison later reads.
	second[0] = 0
	third, _ := Render(KindPrice, rec)
	if !bytes.HasPrefix(third, pngMagic) {
		t.Error("cache entry was mutated through a returned slice")
	}
}
