// Package population provides the shared random primitives and lookup pools
// used by every dataset generator. A Model owns its random source; nothing in
// this package keeps process-wide mutable state.
package population

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidDistribution is returned when a weighted draw is requested over an
// empty, negative or zero-sum weight vector.
var ErrInvalidDistribution = errors.New("invalid distribution")

// Model wraps a seeded random source together with the name and company pools
// drawn from it.
type Model struct {
	rng       *rand.Rand
	names     []string
	companies []string
}

// NewModel creates a model seeded with seed. The name pool is drawn from the
// same source, so two models with the same seed produce identical output.
func NewModel(seed int64) *Model {
	return NewModelFromRand(rand.New(rand.NewSource(seed)))
}

// NewModelFromRand creates a model over an existing random source.
func NewModelFromRand(rng *rand.Rand) *Model {
	m := &Model{
		rng:       rng,
		companies: append([]string(nil), companies...),
	}
	m.names = m.buildNames(namePoolSize)
	return m
}

// Names returns a copy of the name pool.
func (m *Model) Names() []string {
	return append([]string(nil), m.names...)
}

// Companies returns a copy of the previous-employer pool.
func (m *Model) Companies() []string {
	return append([]string(nil), m.companies...)
}

// Name draws a name from the pool.
func (m *Model) Name() string {
	return m.Choice(m.names)
}

// Company draws a previous employer from the pool.
func (m *Model) Company() string {
	return m.Choice(m.companies)
}

// Choice draws one element uniformly. Returns "" for an empty slice.
func (m *Model) Choice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[m.rng.Intn(len(items))]
}

// IntRange draws an integer uniformly from [lo, hi].
func (m *Model) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}

// Uniform draws a float uniformly from [lo, hi).
func (m *Model) Uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// Normal draws from a normal distribution with the given mean and standard deviation.
func (m *Model) Normal(mean, stddev float64) float64 {
	return mean + m.rng.NormFloat64()*stddev
}

// Sample draws up to k distinct elements without replacement, preserving draw order.
func (m *Model) Sample(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []string{}
	}
	pool := append([]string(nil), items...)
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + m.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// WeightedChoice draws one index such that P(i) = weights[i] / Σweights.
func (m *Model) WeightedChoice(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: empty weight set", ErrInvalidDistribution)
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: weight[%d] = %v", ErrInvalidDistribution, i, w)
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: weights sum to %v", ErrInvalidDistribution, total)
	}

	target := m.rng.Float64() * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if target < acc {
			return i, nil
		}
	}
	// Float accumulation can leave target == total; fall back to the last
	// non-zero label.
	return last, nil
}

// WeightedLabel draws one label such that P(label) = weight / Σweights.
func WeightedLabel[T any](m *Model, labels []T, weights []float64) (T, error) {
	var zero T
	if len(labels) != len(weights) {
		return zero, fmt.Errorf("%w: %d labels for %d weights", ErrInvalidDistribution, len(labels), len(weights))
	}
	i, err := m.WeightedChoice(weights)
	if err != nil {
		return zero, err
	}
	return labels[i], nil
}
