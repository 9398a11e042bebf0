package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/config"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/population"
	"recruiting-lab/internal/query"
)

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func testConfig(seed int64) config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := New(testConfig(seed), WithClock(clock))
	require.NoError(t, err)
	return s
}

func TestNew_NoDatasetUntilGenerated(t *testing.T) {
	s := newSession(t, 7)
	assert.NotEmpty(t, s.ID())
	assert.Nil(t, s.Dataset())
	assert.Empty(t, s.Filter(query.Criteria{}))
	assert.Equal(t, 0, s.Metrics(nil).TotalApplicants)
}

func TestNew_ZeroSeedIsClockDerived(t *testing.T) {
	s, err := New(testConfig(0), WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixNano(), s.Seed())
}

func TestGenerateAll_MatchesDirectGeneration(t *testing.T) {
	s := newSession(t, 42)
	ds, err := s.GenerateAll()
	require.NoError(t, err)

	want, err := generation.GenerateAll(population.NewModel(42), generation.DefaultParams(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, want.Clone(), ds)
}

func TestGenerateAll_Idempotent(t *testing.T) {
	s := newSession(t, 42)
	first, err := s.GenerateAll()
	require.NoError(t, err)
	second, err := s.GenerateAll()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRefresh_AdvancesPass(t *testing.T) {
	s := newSession(t, 42)
	first, err := s.GenerateAll()
	require.NoError(t, err)

	refreshed, err := s.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Pass())
	assert.NotEqual(t, first.Candidates, refreshed.Candidates)
	assert.Len(t, refreshed.Candidates, 100)
}

func TestSessions_AreIndependent(t *testing.T) {
	a := newSession(t, 42)
	b := newSession(t, 42)
	assert.NotEqual(t, a.ID(), b.ID())

	_, err := a.GenerateAll()
	require.NoError(t, err)
	_, err = a.Refresh()
	require.NoError(t, err)

	dsB, err := b.GenerateAll()
	require.NoError(t, err)
	want, err := generation.GenerateAll(population.NewModel(42), generation.DefaultParams(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, want.Candidates, dsB.Candidates, "refreshing one session must not disturb another")
}

func TestDataset_IsCopy(t *testing.T) {
	s := newSession(t, 3)
	_, err := s.GenerateAll()
	require.NoError(t, err)

	ds := s.Dataset()
	ds.Candidates[0].Name = "changed"
	ds.Candidates[0].Skills = append(ds.Candidates[0].Skills[:0], "changed")

	again := s.Dataset()
	assert.NotEqual(t, "changed", again.Candidates[0].Name)
	assert.NotEqual(t, "changed", again.Candidates[0].Skills[0])
}

func TestFilterAndMetrics(t *testing.T) {
	s := newSession(t, 11)
	ds, err := s.GenerateAll()
	require.NoError(t, err)

	all := s.Filter(query.Criteria{})
	assert.Equal(t, ds.Candidates, all)
	assert.Equal(t, len(ds.Candidates), s.Metrics(nil).TotalApplicants)

	hired := s.Filter(query.Criteria{Statuses: []domain.Status{domain.StatusHired}})
	m := s.Metrics(hired)
	assert.Equal(t, len(hired), m.TotalHired)
	if len(hired) > 0 {
		assert.InDelta(t, 100.0, m.OverallConversionRate, 1e-9)
	}
}

func TestPage_UsesConfiguredSize(t *testing.T) {
	cfg := testConfig(5)
	cfg.PageSize = 7
	s, err := New(cfg, WithClock(clock))
	require.NoError(t, err)
	_, err = s.GenerateAll()
	require.NoError(t, err)

	page, err := s.Page(s.Filter(query.Criteria{}), query.SortByResumeScore, false, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 7)
	assert.Equal(t, 15, page.PageCount)
	for i := 1; i < len(page.Items); i++ {
		assert.GreaterOrEqual(t, page.Items[i-1].ResumeScore, page.Items[i].ResumeScore)
	}
}

func TestResume_ContinuesFromRecord(t *testing.T) {
	s := newSession(t, 42)
	_, err := s.GenerateAll()
	require.NoError(t, err)
	_, err = s.Refresh()
	require.NoError(t, err)

	resumed, err := Resume(testConfig(42), s.Record(), WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, s.ID(), resumed.ID())
	assert.Equal(t, s.Dataset(), resumed.Dataset())

	next, err := s.Refresh()
	require.NoError(t, err)
	resumedNext, err := resumed.Refresh()
	require.NoError(t, err)
	assert.Equal(t, next, resumedNext)
}

func TestResume_InvalidRecord(t *testing.T) {
	_, err := Resume(testConfig(1), nil)
	assert.Error(t, err)
}
