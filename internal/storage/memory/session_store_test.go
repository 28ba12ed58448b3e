package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
)

func sampleSession(id string, createdAt int64) *domain.Session {
	return &domain.Session{
		SessionID: id,
		UserName:  domain.GuestUserName,
		Params:    domain.DefaultParams(),
		CreatedAt: createdAt,
	}
}

func TestSessionStore_InsertAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, sampleSession("sess1", 1000)))

	got, err := store.GetByID(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, domain.GuestUserName, got.UserName)
	assert.Equal(t, domain.PatternWave, got.Params.Pattern)
}

func TestSessionStore_DuplicateInsert(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, sampleSession("sess1", 1000)))

	err := store.Insert(ctx, sampleSession("sess1", 2000))
	assert.True(t, errors.Is(err, storage.ErrDuplicateKey), "expected ErrDuplicateKey, got %v", err)
}

func TestSessionStore_UpdateMissing(t *testing.T) {
	store := NewSessionStore()

	err := store.Update(context.Background(), sampleSession("missing", 1000))
	assert.True(t, errors.Is(err, storage.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestSessionStore_Update(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := sampleSession("sess1", 1000)
	require.NoError(t, store.Insert(ctx, sess))

	sess.SeriesID = "abc123"
	sess.UpdatedAt = 2000
	require.NoError(t, store.Update(ctx, sess))

	got, err := store.GetByID(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.SeriesID)
	assert.Equal(t, int64(2000), got.UpdatedAt)
}

func TestSessionStore_ListOrdering(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, sampleSession("b", 3000)))
	require.NoError(t, store.Insert(ctx, sampleSession("a", 1000)))
	require.NoError(t, store.Insert(ctx, sampleSession("c", 2000)))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "a", sessions[0].SessionID)
	assert.Equal(t, "c", sessions[1].SessionID)
	assert.Equal(t, "b", sessions[2].SessionID)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, sampleSession("sess1", 1000)))
	require.NoError(t, store.Delete(ctx, "sess1"))

	_, err := store.GetByID(ctx, "sess1")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.NoError(t, store.Delete(ctx, "missing"))
}
