package memory

import (
	"context"
	"errors"
	"testing"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
)

func sampleRecord(id string) *domain.SeriesRecord {
	return &domain.SeriesRecord{
		SeriesID: id,
		Params:   domain.DefaultParams(),
		Series: domain.Series{
			{Date: domain.SeriesStart, Price: 40000, High: 40100, Low: 39900, Volume: 6000},
			{Date: domain.SeriesStart.AddDate(0, 0, 1), Price: 40200, High: 40300, Low: 40000, Volume: 6200},
		},
		GeneratedAt: 1704067200000,
	}
}

func TestSeriesStore_PutAndGet(t *testing.T) {
	store := NewSeriesStore()
	ctx := context.Background()

	if err := store.Put(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	rec, err := store.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(rec.Series) != 2 {
		t.Errorf("Expected 2 records, got %d", len(rec.Series))
	}
	if rec.Params.Pattern != domain.PatternWave {
		t.Errorf("Expected wave pattern, got %s", rec.Params.Pattern)
	}
}

func TestSeriesStore_PutSameIDIsNoop(t *testing.T) {
	store := NewSeriesStore()
	ctx := context.Background()

	if err := store.Put(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("First put failed: %v", err)
	}
	if err := store.Put(ctx, sampleRecord("s1")); err != nil {
		t.Errorf("Re-inserting same series ID should be a no-op, got %v", err)
	}

	n, _ := store.Len(ctx)
	if n != 1 {
		t.Errorf("Expected 1 stored series, got %d", n)
	}
}

func TestSeriesStore_GetMissing(t *testing.T) {
	store := NewSeriesStore()

	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSeriesStore_InvalidInput(t *testing.T) {
	store := NewSeriesStore()
	ctx := context.Background()

	if err := store.Put(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil record, got %v", err)
	}
	if err := store.Put(ctx, &domain.SeriesRecord{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty series ID, got %v", err)
	}
}

func TestSeriesStore_DefensiveCopy(t *testing.T) {
	store := NewSeriesStore()
	ctx := context.Background()

	rec := sampleRecord("s1")
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Mutating the caller's record must not affect the stored copy.
	rec.Series[0].Price = 1

	got, err := store.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Series[0].Price != 40000 {
		t.Errorf("Stored record was mutated through caller reference: price %f", got.Series[0].Price)
	}

	// Mutating a retrieved copy must not affect the store either.
	got.Series[1].Price = 2
	again, _ := store.GetByID(ctx, "s1")
	if again.Series[1].Price != 40200 {
		t.Errorf("Stored record was mutated through retrieved copy: price %f", again.Series[1].Price)
	}
}

func TestSeriesStore_Delete(t *testing.T) {
	store := NewSeriesStore()
	ctx := context.Background()

	if err := store.Put(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, "s1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing ID is a no-op.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing ID should succeed, got %v", err)
	}
}
