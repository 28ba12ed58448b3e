package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/storage"
	"crypto-volatility-lab/internal/storage/memory"
)

// fixedSeedSource yields a deterministic seed sequence for tests.
func fixedSeedSource(seeds ...int64) func() int64 {
	i := 0
	return func() int64 {
		s := seeds[i%len(seeds)]
		i++
		return s
	}
}

func newTestManager(t *testing.T, opts ...Option) (*Manager, *memory.SeriesStore) {
	t.Helper()
	seriesStore := memory.NewSeriesStore()
	base := []Option{
		WithClock(func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }),
		WithSeedSource(fixedSeedSource(7, 8, 9, 10)),
	}
	mgr := NewManager(memory.NewSessionStore(), seriesStore, append(base, opts...)...)
	return mgr, seriesStore
}

type captureNotifier struct {
	sessionIDs []string
	records    []*domain.SeriesRecord
}

func (c *captureNotifier) SeriesUpdated(sessionID string, rec *domain.SeriesRecord, _ *domain.Metrics) {
	c.sessionIDs = append(c.sessionIDs, sessionID)
	c.records = append(c.records, rec)
}

func TestManager_CreateGeneratesSeries(t *testing.T) {
	mgr, seriesStore := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "Dr. Sarah Chen", "MATH-AI-2024")
	require.NoError(t, err)

	assert.Equal(t, "Dr. Sarah Chen", sess.UserName)
	assert.Equal(t, "MATH-AI-2024", sess.ProjectID)
	assert.NotEmpty(t, sess.SessionID)
	assert.NotEmpty(t, sess.SeriesID)
	assert.Equal(t, int64(7), sess.Params.Seed)

	rec, err := seriesStore.GetByID(ctx, sess.SeriesID)
	require.NoError(t, err)
	assert.Len(t, rec.Series, sess.Params.Length)
}

func TestManager_CreateDefaultsToGuest(t *testing.T) {
	mgr, _ := newTestManager(t)

	sess, err := mgr.Create(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.GuestUserName, sess.UserName)
}

func TestManager_UpdateParamsReplacesSeries(t *testing.T) {
	mgr, seriesStore := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)
	oldSeriesID := sess.SeriesID

	p := sess.Params
	p.Pattern = domain.PatternRandom
	p.Amplitude = 1.5

	updated, err := mgr.UpdateParams(ctx, sess.SessionID, p)
	require.NoError(t, err)

	assert.NotEqual(t, oldSeriesID, updated.SeriesID)
	assert.Equal(t, domain.PatternRandom, updated.Params.Pattern)
	// A fresh base seed is rolled on every change.
	assert.Equal(t, int64(8), updated.Params.Seed)

	// The replaced series is dropped, only the new one remains.
	_, err = seriesStore.GetByID(ctx, oldSeriesID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	n, _ := seriesStore.Len(ctx)
	assert.Equal(t, 1, n)
}

func TestManager_UpdateParamsRejectsInvalid(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)

	p := sess.Params
	p.Amplitude = 99

	_, err = mgr.UpdateParams(ctx, sess.SessionID, p)
	assert.True(t, errors.Is(err, domain.ErrInvalidParams), "expected ErrInvalidParams, got %v", err)

	// Session state untouched on rejection.
	got, err := mgr.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.SeriesID, got.SeriesID)
}

func TestManager_RegenerateRollsSeed(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)

	regen, err := mgr.Regenerate(ctx, sess.SessionID)
	require.NoError(t, err)

	assert.NotEqual(t, sess.SeriesID, regen.SeriesID)
	assert.Equal(t, int64(8), regen.Params.Seed)
	// Only the seed changes; the tuple itself is preserved.
	assert.Equal(t, sess.Params.WithSeed(8), regen.Params)
}

func TestManager_MetricsRecomputed(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)

	m, err := mgr.Metrics(ctx, sess.SessionID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.Stability, 0.0)
	assert.LessOrEqual(t, m.Stability, 100.0)
	assert.Greater(t, m.AvgPrice, 0.0)
}

func TestManager_NotifierCalled(t *testing.T) {
	notifier := &captureNotifier{}
	mgr, _ := newTestManager(t, WithNotifier(notifier))
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)
	_, err = mgr.Regenerate(ctx, sess.SessionID)
	require.NoError(t, err)

	require.Len(t, notifier.records, 2)
	assert.Equal(t, sess.SessionID, notifier.sessionIDs[0])
	assert.Equal(t, sess.SessionID, notifier.sessionIDs[1])
}

func TestManager_UnknownSession(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Get(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = mgr.Regenerate(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = mgr.UpdateParams(ctx, "missing", domain.DefaultParams())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestManager_DeleteRemovesSeries(t *testing.T) {
	mgr, seriesStore := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "", "")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, sess.SessionID))

	_, err = mgr.Get(ctx, sess.SessionID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	n, _ := seriesStore.Len(ctx)
	assert.Equal(t, 0, n)
}
