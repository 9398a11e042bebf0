package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"recruiting-lab/internal/config"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/idhash"
	"recruiting-lab/internal/observability"
	"recruiting-lab/internal/query"
	"recruiting-lab/internal/storage"
	"recruiting-lab/internal/verification"
)

// ErrNotGenerated is returned when an operation needs a dataset that has not
// been generated yet.
var ErrNotGenerated = errors.New("session has no dataset")

// Manager creates and tracks independent sessions.
type Manager struct {
	cfg     config.Config
	store   storage.SessionStore
	logger  *logrus.Logger
	metrics *observability.Metrics
	opts    []Option
}

// NewManager creates a manager. opts are applied to every session it builds.
func NewManager(cfg config.Config, store storage.SessionStore, logger *logrus.Logger, m *observability.Metrics, opts ...Option) *Manager {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Manager{cfg: cfg, store: store, logger: logger, metrics: m, opts: opts}
}

// Create starts a session, runs its first generation pass and stores it.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	s, err := New(m.cfg, m.opts...)
	if err != nil {
		return nil, err
	}
	if err := m.generate(s, s.GenerateAll); err != nil {
		return nil, err
	}
	if err := m.store.Insert(ctx, s.Record()); err != nil {
		return nil, fmt.Errorf("store session %s: %w", s.ID(), err)
	}

	if m.metrics != nil {
		m.metrics.SessionsCreated.Inc()
		m.metrics.SessionsActive.Inc()
	}
	m.logger.WithFields(logrus.Fields{
		"session_id": s.ID(),
		"seed":       s.Seed(),
		"candidates": len(s.candidates()),
	}).Info("session created")
	return s, nil
}

// Get resumes a stored session.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return Resume(m.cfg, rec, m.opts...)
}

// Refresh regenerates a stored session with its next pass.
func (m *Manager) Refresh(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.generate(s, s.Refresh); err != nil {
		return nil, err
	}
	if err := m.store.Update(ctx, s.Record()); err != nil {
		return nil, fmt.Errorf("update session %s: %w", id, err)
	}

	m.logger.WithFields(logrus.Fields{
		"session_id": s.ID(),
		"seed":       s.Seed(),
		"pass":       s.Pass(),
	}).Info("session refreshed")
	return s, nil
}

// Close drops a session.
func (m *Manager) Close(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("close session %s: %w", id, err)
	}
	if m.metrics != nil {
		m.metrics.SessionsClosed.Inc()
		m.metrics.SessionsActive.Dec()
	}
	m.logger.WithField("session_id", id).Info("session closed")
	return nil
}

// List returns stored session records, oldest first.
func (m *Manager) List(ctx context.Context) ([]*storage.SessionRecord, error) {
	return m.store.List(ctx)
}

// Filter derives a view from a stored session.
func (m *Manager) Filter(ctx context.Context, id string, c query.Criteria) ([]domain.Candidate, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.Filter(c)
	if m.metrics != nil {
		m.metrics.RecordFilter(!c.Empty(), len(view))
	}
	return view, nil
}

// Verify replays the stored pass of a session and compares it with the
// stored dataset.
func (m *Manager) Verify(ctx context.Context, id string) (*verification.VerificationResult, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.dataset == nil {
		return nil, fmt.Errorf("verify session %s: %w", id, ErrNotGenerated)
	}
	replayed, err := s.Replay()
	if err != nil {
		return nil, err
	}

	res := verification.NewResult(s.ID(), s.Seed(), s.Pass(), verification.CompareDatasets(s.dataset, replayed))
	res.Fingerprint = idhash.DatasetFingerprint(s.dataset)
	if m.metrics != nil {
		m.metrics.RecordVerification(res.Match)
	}
	entry := m.logger.WithFields(logrus.Fields{
		"session_id":  s.ID(),
		"seed":        s.Seed(),
		"pass":        s.Pass(),
		"divergences": len(res.Divergences),
		"fingerprint": idhash.Short(res.Fingerprint),
	})
	if res.Match {
		entry.Info("replay verified")
	} else {
		entry.Warn("replay diverged")
	}
	return res, nil
}

func (m *Manager) generate(s *Session, run func() (*generation.Dataset, error)) error {
	start := time.Now()
	ds, err := run()
	elapsed := time.Since(start)

	n := 0
	if ds != nil {
		n = len(ds.Candidates)
	}
	if m.metrics != nil {
		m.metrics.RecordGeneration(n, elapsed, err)
	}

	fields := logrus.Fields{
		"session_id":  s.ID(),
		"seed":        s.Seed(),
		"pass":        s.Pass(),
		"candidates":  n,
		"duration_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		m.logger.WithFields(fields).WithError(err).Error("generation failed")
		return err
	}
	m.logger.WithFields(fields).Debug("generation pass complete")
	return nil
}
