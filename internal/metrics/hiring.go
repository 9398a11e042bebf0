package metrics

import "recruiting-lab/internal/domain"

// HighScoreThreshold marks a strong resume.
const HighScoreThreshold = 80

// HiringMetrics are the headline figures for a candidate view.
type HiringMetrics struct {
	TotalApplicants int
	TotalHired      int
	// OverallConversionRate is hired/applicants × 100, one decimal.
	OverallConversionRate float64
	AverageScore          float64
	ActivePositions       int
	// HighScoreRatio is the share of resumes scoring HighScoreThreshold or
	// more, percent, one decimal.
	HighScoreRatio float64
}

// AggregateMetrics computes headline metrics. An empty view yields zeroed
// metrics rather than an error.
func AggregateMetrics(candidates []domain.Candidate) HiringMetrics {
	n := len(candidates)
	if n == 0 {
		return HiringMetrics{}
	}

	hired, high, scoreSum := 0, 0, 0
	positions := make(map[string]struct{})
	for _, c := range candidates {
		if c.Status == domain.StatusHired {
			hired++
		}
		if c.ResumeScore >= HighScoreThreshold {
			high++
		}
		scoreSum += c.ResumeScore
		positions[c.Position] = struct{}{}
	}

	return HiringMetrics{
		TotalApplicants:       n,
		TotalHired:            hired,
		OverallConversionRate: domain.Round(computeRate(hired, n), 1),
		AverageScore:          domain.Round(float64(scoreSum)/float64(n), 1),
		ActivePositions:       len(positions),
		HighScoreRatio:        domain.Round(computeRate(high, n), 1),
	}
}
