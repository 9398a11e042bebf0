package population

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedChoice_InvalidDistribution(t *testing.T) {
	m := NewModel(1)

	tests := []struct {
		name    string
		weights []float64
	}{
		{"empty", nil},
		{"all zero", []float64{0, 0, 0}},
		{"negative", []float64{0.5, -0.1, 0.6}},
		{"nan", []float64{0.5, math.NaN()}},
		{"inf", []float64{math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.WeightedChoice(tt.weights)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDistribution))
		})
	}
}

func TestWeightedLabel_LengthMismatch(t *testing.T) {
	m := NewModel(1)
	_, err := WeightedLabel(m, []string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidDistribution)
}

func TestWeightedChoice_ZeroWeightNeverDrawn(t *testing.T) {
	m := NewModel(7)
	for i := 0; i < 2000; i++ {
		idx, err := m.WeightedChoice([]float64{0, 1, 0, 3})
		require.NoError(t, err)
		assert.Contains(t, []int{1, 3}, idx)
	}
}

func TestWeightedChoice_Proportions(t *testing.T) {
	m := NewModel(42)
	weights := []float64{0.5, 0.3, 0.1, 0.05, 0.03, 0.02}
	counts := make([]int, len(weights))
	const draws = 100_000

	for i := 0; i < draws; i++ {
		idx, err := m.WeightedChoice(weights)
		require.NoError(t, err)
		counts[idx]++
	}

	for i, w := range weights {
		got := float64(counts[i]) / draws
		assert.InDelta(t, w, got, 0.01, "label %d", i)
	}
}

func TestModel_Deterministic(t *testing.T) {
	a := NewModel(99)
	b := NewModel(99)

	assert.Equal(t, a.Names(), b.Names())
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Normal(75, 15), b.Normal(75, 15))
		assert.Equal(t, a.IntRange(1, 180), b.IntRange(1, 180))
	}
}

func TestModel_NamePool(t *testing.T) {
	m := NewModel(3)
	names := m.Names()
	require.Len(t, names, namePoolSize)
	for _, n := range names {
		assert.NotEmpty(t, n)
	}
	assert.Contains(t, names, m.Name())
	assert.Contains(t, companies, m.Company())
}

func TestModel_IntRangeInclusive(t *testing.T) {
	m := NewModel(5)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := m.IntRange(7, 9)
		assert.GreaterOrEqual(t, v, 7)
		assert.LessOrEqual(t, v, 9)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 4, m.IntRange(4, 4))
}

func TestModel_Sample(t *testing.T) {
	m := NewModel(11)
	pool := []string{"a", "b", "c", "d", "e"}

	got := m.Sample(pool, 3)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, s := range got {
		assert.Contains(t, pool, s)
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}

	assert.Len(t, m.Sample([]string{"x"}, 3), 1)
	assert.Empty(t, m.Sample(pool, 0))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, pool, "pool must not be reordered")
}

func TestSkillPool(t *testing.T) {
	assert.Contains(t, SkillPool("백엔드 개발자"), "PostgreSQL")
	assert.Equal(t, []string{FallbackSkill}, SkillPool("그래픽 디자이너"))

	pool := SkillPool("QA 엔지니어")
	pool[0] = "mutated"
	assert.Equal(t, "Selenium", SkillPool("QA 엔지니어")[0])
}
