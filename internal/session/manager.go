// Package session owns the dashboard state that the original UI kept in
// implicit globals: each session carries its parameter tuple and base
// seed explicitly, and every change runs the full generate → compute
// pipeline synchronously.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/generator"
	"crypto-volatility-lab/internal/metrics"
	"crypto-volatility-lab/internal/observability"
	"crypto-volatility-lab/internal/seedhash"
	"crypto-volatility-lab/internal/storage"
)

// BaseSeedRange bounds the base seed rolled on every regeneration.
const BaseSeedRange = 1_000_000

// Notifier receives a callback after every successful regeneration.
// The server's WebSocket hub implements it to push updates to clients.
type Notifier interface {
	SeriesUpdated(sessionID string, rec *domain.SeriesRecord, m *domain.Metrics)
}

// Manager orchestrates sessions: it validates parameters, rolls base
// seeds, runs the generator, stores the resulting series and recomputes
// metrics. All operations are synchronous; concurrent callers are
// isolated by the stores' locking.
type Manager struct {
	sessions storage.SessionStore
	series   storage.SeriesStore

	notifier Notifier
	defaults domain.Params
	now      func() time.Time
	rollSeed func() int64
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the regeneration notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithDefaultParams overrides the parameters new sessions start with.
func WithDefaultParams(p domain.Params) Option {
	return func(m *Manager) { m.defaults = p }
}

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithSeedSource overrides the base-seed roll, for deterministic tests.
func WithSeedSource(roll func() int64) Option {
	return func(m *Manager) { m.rollSeed = roll }
}

// NewManager creates a session manager backed by the given stores.
func NewManager(sessions storage.SessionStore, series storage.SeriesStore, opts ...Option) *Manager {
	m := &Manager{
		sessions: sessions,
		series:   series,
		defaults: domain.DefaultParams(),
		now:      time.Now,
		rollSeed: rollBaseSeed,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new session with default parameters, generates its
// first series and returns the session.
func (m *Manager) Create(ctx context.Context, userName, projectID string) (*domain.Session, error) {
	if userName == "" {
		userName = domain.GuestUserName
	}

	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("create session id: %w", err)
	}

	now := m.now().UnixMilli()
	sess := &domain.Session{
		SessionID: id,
		UserName:  userName,
		ProjectID: projectID,
		Params:    m.defaults,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.regenerate(ctx, sess); err != nil {
		return nil, err
	}
	if err := m.sessions.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	observability.RecordSessionCreated()
	return sess, nil
}

// Get retrieves a session by ID.
func (m *Manager) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.sessions.GetByID(ctx, sessionID)
}

// List returns all sessions ordered by creation time.
func (m *Manager) List(ctx context.Context) ([]*domain.Session, error) {
	return m.sessions.List(ctx)
}

// Series returns the session's current series record.
func (m *Manager) Series(ctx context.Context, sessionID string) (*domain.SeriesRecord, error) {
	sess, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.series.GetByID(ctx, sess.SeriesID)
}

// Metrics recomputes metrics from the session's current series.
// Returns nil metrics when the series is too short to summarize.
func (m *Manager) Metrics(ctx context.Context, sessionID string) (*domain.Metrics, error) {
	rec, err := m.Series(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return metrics.Compute(rec.Series), nil
}

// UpdateParams applies a new parameter tuple to the session. The tuple is
// validated, a fresh base seed is rolled and the series is fully
// replaced; nothing survives the old series.
func (m *Manager) UpdateParams(ctx context.Context, sessionID string, p domain.Params) (*domain.Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sess, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Params = p
	if err := m.regenerate(ctx, sess); err != nil {
		return nil, err
	}
	if err := m.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

// Regenerate rolls a fresh base seed and replaces the session's series
// without changing the other parameters.
func (m *Manager) Regenerate(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := m.regenerate(ctx, sess); err != nil {
		return nil, err
	}
	if err := m.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

// Delete removes a session and its current series.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	sess, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.SeriesID != "" {
		if err := m.series.Delete(ctx, sess.SeriesID); err != nil {
			return fmt.Errorf("delete series: %w", err)
		}
	}
	if err := m.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	observability.RecordSessionDeleted()
	return nil
}

// regenerate rolls a base seed, generates, stores the new series and
// drops the replaced one. sess is mutated in place.
func (m *Manager) regenerate(ctx context.Context, sess *domain.Session) error {
	sess.Params = sess.Params.WithSeed(m.rollSeed())

	start := m.now()
	series := generator.Generate(sess.Params)
	observability.RecordSeriesGenerated(string(sess.Params.Pattern), m.now().Sub(start).Seconds())

	rec := &domain.SeriesRecord{
		SeriesID:    seedhash.SeriesID(sess.Params),
		Params:      sess.Params,
		Series:      series,
		GeneratedAt: m.now().UnixMilli(),
	}
	if err := m.series.Put(ctx, rec); err != nil {
		return fmt.Errorf("store series: %w", err)
	}

	oldSeriesID := sess.SeriesID
	sess.SeriesID = rec.SeriesID
	sess.UpdatedAt = rec.GeneratedAt

	if oldSeriesID != "" && oldSeriesID != rec.SeriesID {
		if err := m.series.Delete(ctx, oldSeriesID); err != nil {
			return fmt.Errorf("drop replaced series: %w", err)
		}
	}

	if m.notifier != nil {
		m.notifier.SeriesUpdated(sess.SessionID, rec, metrics.Compute(series))
	}
	return nil
}

// rollBaseSeed draws a fresh base seed in [0, BaseSeedRange).
func rollBaseSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(BaseSeedRange))
	if err != nil {
		// Clock fallback if the OS entropy source is unavailable.
		return time.Now().UnixNano() % BaseSeedRange
	}
	return n.Int64()
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
