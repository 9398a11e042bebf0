// Package session scopes one generated dataset and its derived views. Every
// session owns its random stream; nothing is shared across sessions.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"recruiting-lab/internal/config"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/metrics"
	"recruiting-lab/internal/population"
	"recruiting-lab/internal/query"
	"recruiting-lab/internal/storage"
)

// Session is not safe for concurrent use; Manager serialises access through
// its store.
type Session struct {
	id        string
	seed      int64
	pass      int
	cfg       config.Config
	params    generation.Params
	now       func() time.Time
	createdAt time.Time
	model     *population.Model
	dataset   *generation.Dataset
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the reference clock used for applied dates and
// activity windows.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New creates a session from cfg without generating data. A zero cfg.Seed is
// replaced by a clock-derived seed.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.NewString(),
		seed:   cfg.Seed,
		cfg:    cfg,
		params: params,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = s.now().UnixNano()
	}
	s.createdAt = s.now()
	s.model = population.NewModel(passSeed(s.seed, s.pass))
	return s, nil
}

// Resume rebuilds a session from a stored record.
func Resume(cfg config.Config, rec *storage.SessionRecord, opts ...Option) (*Session, error) {
	if rec == nil || rec.ID == "" {
		return nil, storage.ErrInvalidInput
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:        rec.ID,
		seed:      rec.Seed,
		pass:      rec.Pass,
		cfg:       cfg,
		params:    params,
		now:       time.Now,
		createdAt: rec.CreatedAt,
		dataset:   rec.Dataset.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.model = population.NewModel(passSeed(s.seed, s.pass))
	return s, nil
}

// passSeed derives the seed of generation pass n. Pass 0 uses the session
// seed unchanged.
func passSeed(seed int64, pass int) int64 {
	return int64(uint64(seed) + uint64(pass)*0x9E3779B97F4A7C15)
}

func (s *Session) ID() string           { return s.id }
func (s *Session) Seed() int64          { return s.seed }
func (s *Session) Pass() int            { return s.pass }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) Now() time.Time       { return s.now() }

// PerHireValue is the configured value of one hire for channel ROI.
func (s *Session) PerHireValue() decimal.Decimal { return s.cfg.PerHire() }

// GenerateAll runs the current pass and replaces the session dataset. The
// same seed, pass and clock always produce the same dataset.
func (s *Session) GenerateAll() (*generation.Dataset, error) {
	s.model = population.NewModel(passSeed(s.seed, s.pass))
	ds, err := generation.GenerateAll(s.model, s.params, s.now())
	if err != nil {
		return nil, fmt.Errorf("session %s pass %d: %w", s.id, s.pass, err)
	}
	s.dataset = ds
	return ds.Clone(), nil
}

// Replay regenerates the current pass at the time the stored dataset was
// generated, without touching the session state. It returns nil before the
// first generation pass.
func (s *Session) Replay() (*generation.Dataset, error) {
	if s.dataset == nil {
		return nil, nil
	}
	ds, err := generation.GenerateAll(population.NewModel(passSeed(s.seed, s.pass)), s.params, s.dataset.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("replay session %s pass %d: %w", s.id, s.pass, err)
	}
	return ds, nil
}

// Refresh advances to the next pass and regenerates.
func (s *Session) Refresh() (*generation.Dataset, error) {
	s.pass++
	return s.GenerateAll()
}

// Dataset returns a deep copy of the current dataset, or nil before the
// first generation pass.
func (s *Session) Dataset() *generation.Dataset {
	return s.dataset.Clone()
}

func (s *Session) candidates() []domain.Candidate {
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Candidates
}

// Filter derives a candidate view from the current dataset.
func (s *Session) Filter(c query.Criteria) []domain.Candidate {
	return query.Filter(s.candidates(), c)
}

// Metrics aggregates a view. Pass nil for the whole population.
func (s *Session) Metrics(view []domain.Candidate) metrics.HiringMetrics {
	if view == nil {
		view = s.candidates()
	}
	return metrics.AggregateMetrics(view)
}

// Page sorts a view and returns one page of the configured size.
func (s *Session) Page(view []domain.Candidate, key query.SortKey, ascending bool, pageIndex int) (query.Page, error) {
	return query.SortAndPaginate(view, key, ascending, s.cfg.PageSize, pageIndex)
}

// Record snapshots the session for storage.
func (s *Session) Record() *storage.SessionRecord {
	updated := s.createdAt
	if s.dataset != nil {
		updated = s.dataset.GeneratedAt
	}
	return &storage.SessionRecord{
		ID:        s.id,
		Seed:      s.seed,
		Pass:      s.pass,
		CreatedAt: s.createdAt,
		UpdatedAt: updated,
		Dataset:   s.dataset.Clone(),
	}
}
