package generation

import (
	"fmt"
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/population"
)

const (
	monthlyGrowth = 0.05

	// maxRatioDraws bounds the resampling of sub-category ratios before the
	// sampled ratios are scaled down to fit.
	maxRatioDraws = 10
)

type ratioRange struct{ lo, hi float64 }

// Developer, designer, data, PM and QA ratio ranges; "others" takes the remainder.
var categoryRatioRanges = [5]ratioRange{
	{0.45, 0.55},
	{0.12, 0.18},
	{0.08, 0.15},
	{0.05, 0.10},
	{0.03, 0.08},
}

// SeasonalFactor returns the hiring-season multiplier for a calendar month.
func SeasonalFactor(month time.Month) float64 {
	switch month {
	case time.March, time.April, time.September, time.October:
		return 1.3
	case time.January, time.February, time.December:
		return 0.8
	case time.July, time.August:
		return 0.9
	default:
		return 1.0
	}
}

// MonthStart truncates t to midnight UTC on the first of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyTrends produces one record per month from start through end inclusive.
func MonthlyTrends(m *population.Model, start, end time.Time, baseApplicants int) ([]domain.MonthlyTrend, error) {
	start, end = MonthStart(start), MonthStart(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidMonthRange, start.Format("2006-01"), end.Format("2006-01"))
	}
	if baseApplicants < 0 {
		return nil, fmt.Errorf("%w: base applicants %d", ErrInvalidPopulation, baseApplicants)
	}

	var out []domain.MonthlyTrend
	for i, month := 0, start; !month.After(end); i, month = i+1, month.AddDate(0, 1, 0) {
		growth := 1 + float64(i)*monthlyGrowth
		total := int(float64(baseApplicants) * SeasonalFactor(month.Month()) * growth)

		r := categoryRatios(m)
		others := 1 - (r[0] + r[1] + r[2] + r[3] + r[4])
		if others < 0 {
			others = 0
		}

		out = append(out, domain.MonthlyTrend{
			Month:               month.Format("2006-01"),
			TotalApplicants:     total,
			Developers:          int(float64(total) * r[0]),
			Designers:           int(float64(total) * r[1]),
			DataAnalysts:        int(float64(total) * r[2]),
			ProductManagers:     int(float64(total) * r[3]),
			QAEngineers:         int(float64(total) * r[4]),
			Others:              int(float64(total) * others),
			AvgQualityScore:     domain.Round(m.Uniform(70, 85), 1),
			AvgResponseTimeDays: domain.Round(m.Uniform(2.5, 7.0), 1),
		})
	}
	return out, nil
}

// categoryRatios samples the five named ratios so that their sum never
// exceeds 1. Over-full draws are resampled; if every attempt overflows the
// last draw is scaled down proportionally, leaving "others" at zero.
func categoryRatios(m *population.Model) [5]float64 {
	var r [5]float64
	for attempt := 0; attempt < maxRatioDraws; attempt++ {
		sum := 0.0
		for i, rr := range categoryRatioRanges {
			r[i] = m.Uniform(rr.lo, rr.hi)
			sum += r[i]
		}
		if sum <= 1 {
			return r
		}
		if attempt == maxRatioDraws-1 {
			for i := range r {
				r[i] /= sum
			}
		}
	}
	return r
}
