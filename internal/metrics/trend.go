package metrics

import "recruiting-lab/internal/domain"

// TrendGrowth is the month-over-month change in total applicants.
type TrendGrowth struct {
	Month           string
	TotalApplicants int
	// GrowthPct is the change versus the previous month, percent, one decimal.
	// The first month and months following an empty month report 0.
	GrowthPct float64
}

// ComputeTrendGrowth derives month-over-month growth.
func ComputeTrendGrowth(trends []domain.MonthlyTrend) []TrendGrowth {
	out := make([]TrendGrowth, len(trends))
	for i, tr := range trends {
		g := TrendGrowth{Month: tr.Month, TotalApplicants: tr.TotalApplicants}
		if i > 0 {
			prev := trends[i-1].TotalApplicants
			g.GrowthPct = domain.Round(computeRate(tr.TotalApplicants-prev, prev), 1)
		}
		out[i] = g
	}
	return out
}
