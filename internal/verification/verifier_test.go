package verification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/population"
)

var refNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func generate(t *testing.T, seed int64) *generation.Dataset {
	t.Helper()
	ds, err := generation.GenerateAll(population.NewModel(seed), generation.DefaultParams(), refNow)
	require.NoError(t, err)
	return ds
}

func fields(divs []FieldDivergence) []string {
	out := make([]string, len(divs))
	for i, d := range divs {
		out[i] = d.Field
	}
	return out
}

func TestCompareDatasets_ExactMatch(t *testing.T) {
	divs := CompareDatasets(generate(t, 42), generate(t, 42))
	assert.Empty(t, divs)
}

func TestCompareDatasets_DifferentSeed(t *testing.T) {
	divs := CompareDatasets(generate(t, 42), generate(t, 43))
	assert.NotEmpty(t, divs)
}

func TestCompareDatasets_ReportsFieldPaths(t *testing.T) {
	stored := generate(t, 7)
	replayed := stored.Clone()
	replayed.Candidates[2].ResumeScore++
	replayed.Channels[0].Cost = replayed.Channels[0].Cost.Add(decimal.NewFromInt(1))
	replayed.Funnel = replayed.Funnel[:len(replayed.Funnel)-1]

	divs := CompareDatasets(stored, replayed)

	assert.ElementsMatch(t, []string{
		"Candidates[2].ResumeScore",
		"Channels[0].Cost",
		"Funnel.len",
	}, fields(divs))
	assert.Equal(t, stored.Candidates[2].ResumeScore, divs[0].Expected)
	assert.Equal(t, stored.Candidates[2].ResumeScore+1, divs[0].Actual)
}

func TestCompareDatasets_InterviewDatePresence(t *testing.T) {
	stored := generate(t, 7)
	replayed := stored.Clone()
	when := refNow
	replayed.Candidates[0].InterviewDate = nil
	stored.Candidates[0].InterviewDate = &when

	divs := CompareDatasets(stored, replayed)
	require.Len(t, divs, 1)
	assert.Equal(t, "Candidates[0].InterviewDate", divs[0].Field)
}

func TestCompareDatasets_FloatTolerance(t *testing.T) {
	stored := generate(t, 7)
	replayed := stored.Clone()
	replayed.Candidates[0].Rating += FloatTolerance / 10
	assert.Empty(t, CompareDatasets(stored, replayed))

	replayed.Candidates[0].Rating += FloatTolerance * 10
	assert.Equal(t, []string{"Candidates[0].Rating"}, fields(CompareDatasets(stored, replayed)))
}

func TestCompareDatasets_Nil(t *testing.T) {
	assert.Empty(t, CompareDatasets(nil, nil))

	divs := CompareDatasets(generate(t, 1), nil)
	require.Len(t, divs, 1)
	assert.Equal(t, "Dataset", divs[0].Field)
}

func TestNewResult(t *testing.T) {
	ok := NewResult("s1", 42, 0, nil)
	assert.True(t, ok.Match)
	assert.Equal(t, "s1", ok.SessionID)

	bad := NewResult("s1", 42, 1, []FieldDivergence{{Field: "GeneratedAt"}})
	assert.False(t, bad.Match)
	assert.Equal(t, 1, bad.Pass)
}
