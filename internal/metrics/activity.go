package metrics

import (
	"sort"
	"time"

	"recruiting-lab/internal/domain"
)

// PeriodActivity counts recent applications relative to a reference time.
type PeriodActivity struct {
	Today         int
	ThisWeek      int
	ThisMonth     int
	AvgScoreToday float64
}

// PeriodCounts counts applications made today, since Monday of the current
// week and since the first of the current month, in now's location.
func PeriodCounts(candidates []domain.Candidate, now time.Time) PeriodActivity {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekday := (int(today.Weekday()) + 6) % 7 // Monday = 0
	weekStart := today.AddDate(0, 0, -weekday)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	var out PeriodActivity
	var todayScores []float64
	for _, c := range candidates {
		applied := c.AppliedDate.In(loc)
		day := time.Date(applied.Year(), applied.Month(), applied.Day(), 0, 0, 0, 0, loc)
		if day.Equal(today) {
			out.Today++
			todayScores = append(todayScores, float64(c.ResumeScore))
		}
		if !day.Before(weekStart) {
			out.ThisWeek++
		}
		if !day.Before(monthStart) {
			out.ThisMonth++
		}
	}
	out.AvgScoreToday = domain.Round(computeMean(todayScores), 1)
	return out
}

// RecentApplicants returns up to limit candidates, most recent application first.
func RecentApplicants(candidates []domain.Candidate, limit int) []domain.Candidate {
	sorted := domain.CloneCandidates(candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AppliedDate.After(sorted[j].AppliedDate)
	})
	return head(sorted, limit)
}

// TopScorers returns up to limit candidates scoring at least threshold, in
// input order.
func TopScorers(candidates []domain.Candidate, threshold, limit int) []domain.Candidate {
	var out []domain.Candidate
	for _, c := range candidates {
		if c.ResumeScore >= threshold {
			out = append(out, c.Clone())
		}
	}
	return head(out, limit)
}

// UpcomingInterviews returns up to limit interviews scheduled at or after
// now, earliest first.
func UpcomingInterviews(schedule []domain.Interview, now time.Time, limit int) []domain.Interview {
	var out []domain.Interview
	for _, iv := range schedule {
		if !iv.Date.Before(now) {
			out = append(out, iv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func head(in []domain.Candidate, limit int) []domain.Candidate {
	if limit >= 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
