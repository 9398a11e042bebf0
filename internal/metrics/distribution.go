package metrics

import (
	"sort"

	"recruiting-lab/internal/domain"
)

// LabelCount is a label with its occurrence count.
type LabelCount struct {
	Label string
	Count int
}

// StatusDistribution counts candidates per pipeline stage, in stage order.
// Stages with no candidates are included with a zero count.
func StatusDistribution(candidates []domain.Candidate) []LabelCount {
	counts := make(map[domain.Status]int)
	for _, c := range candidates {
		counts[c.Status]++
	}
	out := make([]LabelCount, 0, len(domain.PipelineStages))
	for _, st := range domain.PipelineStages {
		out = append(out, LabelCount{Label: string(st), Count: counts[st]})
	}
	return out
}

// ExperienceDistribution counts candidates per experience level, in level order.
func ExperienceDistribution(candidates []domain.Candidate) []LabelCount {
	counts := make(map[domain.Experience]int)
	for _, c := range candidates {
		counts[c.Experience]++
	}
	out := make([]LabelCount, 0, len(domain.ExperienceLevels))
	for _, e := range domain.ExperienceLevels {
		out = append(out, LabelCount{Label: string(e), Count: counts[e]})
	}
	return out
}

// HistogramBin is one equal-width score bucket, [Lower, Upper).
// The last bin also includes Upper.
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram is a resume score histogram with the view's mean.
type Histogram struct {
	Bins []HistogramBin
	Mean float64
}

// ScoreHistogram buckets resume scores into bins equal-width bins over the
// score range. bins <= 0 defaults to 20.
func ScoreHistogram(candidates []domain.Candidate, bins int) Histogram {
	if bins <= 0 {
		bins = 20
	}
	lo, hi := float64(domain.MinResumeScore), float64(domain.MaxResumeScore)
	width := (hi - lo) / float64(bins)

	h := Histogram{Bins: make([]HistogramBin, bins)}
	for i := range h.Bins {
		h.Bins[i] = HistogramBin{Lower: lo + float64(i)*width, Upper: lo + float64(i+1)*width}
	}
	h.Bins[bins-1].Upper = hi

	scores := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		s := float64(c.ResumeScore)
		scores = append(scores, s)
		idx := int((s - lo) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}
	h.Mean = domain.Round(computeMean(scores), 1)
	return h
}

// CohortRow is one application month with per-status counts.
type CohortRow struct {
	Month    string // YYYY-MM
	ByStatus map[domain.Status]int
	Total    int
}

// Cohort groups candidates by application month and status, months ascending.
func Cohort(candidates []domain.Candidate) []CohortRow {
	rows := make(map[string]*CohortRow)
	for _, c := range candidates {
		key := c.AppliedDate.Format("2006-01")
		row, ok := rows[key]
		if !ok {
			row = &CohortRow{Month: key, ByStatus: make(map[domain.Status]int)}
			rows[key] = row
		}
		row.ByStatus[c.Status]++
		row.Total++
	}

	out := make([]CohortRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
