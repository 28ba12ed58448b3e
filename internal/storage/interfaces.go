// Package storage defines the store interfaces used by the session layer.
// Series and sessions live only for the process lifetime; the sole
// implementations are the in-memory stores in storage/memory.
package storage

import (
	"context"

	"crypto-volatility-lab/internal/domain"
)

// SeriesStore holds generated series keyed by their deterministic series ID.
type SeriesStore interface {
	// Put stores a series record. Re-inserting the same series ID is a
	// no-op: identical parameters always regenerate identical data.
	Put(ctx context.Context, rec *domain.SeriesRecord) error

	// GetByID retrieves a series record. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, seriesID string) (*domain.SeriesRecord, error)

	// Delete removes a series record. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, seriesID string) error

	// Len reports the number of stored series.
	Len(ctx context.Context) (int, error)
}

// SessionStore holds dashboard sessions keyed by session ID.
type SessionStore interface {
	// Insert adds a new session. Returns ErrDuplicateKey if the ID exists.
	Insert(ctx context.Context, s *domain.Session) error

	// GetByID retrieves a session. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// Update replaces an existing session. Returns ErrNotFound if not exists.
	Update(ctx context.Context, s *domain.Session) error

	// List returns all sessions ordered by creation time ASC.
	List(ctx context.Context) ([]*domain.Session, error)

	// Delete removes a session. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
