package metrics

import (
	"math"
	"sort"

	"recruiting-lab/internal/domain"
)

// ScoreSummary describes the resume score distribution of a candidate set.
type ScoreSummary struct {
	Count  int
	Mean   float64
	Median float64
	P10    float64
	P90    float64
	Min    int
	Max    int
	Stddev float64
}

// SummarizeScores computes the resume score distribution. An empty input
// yields a zero summary.
func SummarizeScores(candidates []domain.Candidate) ScoreSummary {
	n := len(candidates)
	if n == 0 {
		return ScoreSummary{}
	}

	scores := make([]float64, n)
	for i, c := range candidates {
		scores[i] = float64(c.ResumeScore)
	}
	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	mean := computeMean(scores)
	return ScoreSummary{
		Count:  n,
		Mean:   mean,
		Median: computePercentile(sorted, 0.50),
		P10:    computePercentile(sorted, 0.10),
		P90:    computePercentile(sorted, 0.90),
		Min:    int(sorted[0]),
		Max:    int(sorted[n-1]),
		Stddev: computeStddev(scores, mean),
	}
}

// computeRate returns part / total × 100, or 0 when total is 0.
func computeRate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// computeMean calculates the arithmetic mean.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeStddev calculates sample standard deviation (n-1 denominator).
func computeStddev(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// computePercentile uses linear interpolation.
// sorted must be pre-sorted ASC.
// p is percentile (0.10 = 10th percentile).
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
