// Package metrics derives business metrics from generated datasets. All
// functions are pure: they read their inputs and return new values.
package metrics

import "recruiting-lab/internal/domain"

// StageConversion is the pass-through rate between two adjacent stages.
type StageConversion struct {
	From string
	To   string
	// Rate is to/from × 100, one decimal; 0 when the earlier stage is empty.
	Rate float64
}

// StageDropoff is the loss at one funnel stage.
type StageDropoff struct {
	Name  string
	Count int
	// Lost is the previous stage's count minus this one; 0 for the first stage.
	Lost int
	// CumulativeLossPct is (first − count) / first × 100, one decimal.
	CumulativeLossPct float64
}

// ComputeConversions returns len(stages)-1 stage-to-stage conversions.
func ComputeConversions(stages []domain.StageCount) []StageConversion {
	if len(stages) < 2 {
		return []StageConversion{}
	}
	out := make([]StageConversion, 0, len(stages)-1)
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		out = append(out, StageConversion{
			From: prev.Name,
			To:   cur.Name,
			Rate: domain.Round(computeRate(cur.Count, prev.Count), 1),
		})
	}
	return out
}

// ComputeDropoff returns one entry per stage.
func ComputeDropoff(stages []domain.StageCount) []StageDropoff {
	out := make([]StageDropoff, len(stages))
	if len(stages) == 0 {
		return out
	}
	first := stages[0].Count
	for i, s := range stages {
		d := StageDropoff{Name: s.Name, Count: s.Count}
		if i > 0 {
			d.Lost = stages[i-1].Count - s.Count
		}
		d.CumulativeLossPct = domain.Round(computeRate(first-s.Count, first), 1)
		out[i] = d
	}
	return out
}

// OverallConversion returns last/first × 100 for the funnel, one decimal.
func OverallConversion(stages []domain.StageCount) float64 {
	if len(stages) == 0 {
		return 0
	}
	return domain.Round(computeRate(stages[len(stages)-1].Count, stages[0].Count), 1)
}
