package memory

import (
	"context"
	"sync"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
)

// SeriesStore is an in-memory implementation of storage.SeriesStore.
type SeriesStore struct {
	mu   sync.RWMutex
	data map[string]*domain.SeriesRecord // keyed by series_id
}

// NewSeriesStore creates a new in-memory series store.
func NewSeriesStore() *SeriesStore {
	return &SeriesStore{
		data: make(map[string]*domain.SeriesRecord),
	}
}

// Put stores a series record, copying it defensively.
// Same series ID means same parameters and therefore identical data, so
// re-inserting is a no-op rather than an error.
func (s *SeriesStore) Put(_ context.Context, rec *domain.SeriesRecord) error {
	if rec == nil || rec.SeriesID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[rec.SeriesID]; exists {
		return nil
	}
	s.data[rec.SeriesID] = copyRecord(rec)
	return nil
}

// GetByID retrieves a copy of the stored record.
func (s *SeriesStore) GetByID(_ context.Context, seriesID string) (*domain.SeriesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[seriesID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyRecord(rec), nil
}

// Delete removes a series record.
func (s *SeriesStore) Delete(_ context.Context, seriesID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, seriesID)
	return nil
}

// Len reports the number of stored series.
func (s *SeriesStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data), nil
}

func copyRecord(rec *domain.SeriesRecord) *domain.SeriesRecord {
	cp := *rec
	cp.Series = make(domain.Series, len(rec.Series))
	copy(cp.Series, rec.Series)
	return &cp
}

var _ storage.SeriesStore = (*SeriesStore)(nil)
