package verification

import (
	"fmt"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
)

// Check represents one dataset invariant.
type Check struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// CheckResult contains every invariant check of one dataset.
type CheckResult struct {
	Checks  []Check
	AllPass bool
	Errors  []string // offending records
}

func (r *CheckResult) add(c Check, errs []string) {
	r.Checks = append(r.Checks, c)
	if !c.Pass {
		r.AllPass = false
	}
	r.Errors = append(r.Errors, errs...)
}

// CheckDataset validates the structural guarantees of a generated dataset.
// A nil dataset passes trivially with no checks.
func CheckDataset(ds *generation.Dataset) *CheckResult {
	result := &CheckResult{AllPass: true, Errors: []string{}}
	if ds == nil {
		return result
	}

	result.add(checkScoreBounds(ds.Candidates))
	result.add(checkUniqueIDs(ds.Candidates))
	result.add(checkInterviewDates(ds.Candidates))
	result.add(checkChannels(ds.Channels))
	result.add(checkFunnel(ds.Funnel))
	result.add(checkTrend(ds.MonthlyTrend))
	return result
}

func checkScoreBounds(cands []domain.Candidate) (Check, []string) {
	c := Check{
		Name:      "Resume scores in range",
		Threshold: fmt.Sprintf("%d-%d", domain.MinResumeScore, domain.MaxResumeScore),
		Actual:    "n/a",
		Pass:      true,
	}
	if len(cands) == 0 {
		return c, nil
	}

	var errs []string
	lo, hi := cands[0].ResumeScore, cands[0].ResumeScore
	for _, cand := range cands {
		s := cand.ResumeScore
		lo, hi = min(lo, s), max(hi, s)
		if s < domain.MinResumeScore || s > domain.MaxResumeScore {
			errs = append(errs, fmt.Sprintf("%s: resume score %d out of range", cand.ID, s))
		}
	}
	c.Actual = fmt.Sprintf("%d-%d", lo, hi)
	c.Pass = len(errs) == 0
	return c, errs
}

func checkUniqueIDs(cands []domain.Candidate) (Check, []string) {
	seen := make(map[string]int, len(cands))
	var errs []string
	for _, cand := range cands {
		seen[cand.ID]++
		if seen[cand.ID] == 2 {
			errs = append(errs, fmt.Sprintf("%s: duplicate candidate id", cand.ID))
		}
	}
	return Check{
		Name:      "Duplicate candidate IDs",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(errs)),
		Pass:      len(errs) == 0,
	}, errs
}

// checkInterviewDates verifies that exactly the interview-stage candidates
// carry an interview date, and that it falls after the application.
func checkInterviewDates(cands []domain.Candidate) (Check, []string) {
	var errs []string
	for _, cand := range cands {
		switch {
		case cand.Status.IsInterview() && cand.InterviewDate == nil:
			errs = append(errs, fmt.Sprintf("%s: %s without interview date", cand.ID, cand.Status))
		case !cand.Status.IsInterview() && cand.InterviewDate != nil:
			errs = append(errs, fmt.Sprintf("%s: interview date outside interview stage", cand.ID))
		case cand.InterviewDate != nil && cand.InterviewDate.Before(cand.AppliedDate):
			errs = append(errs, fmt.Sprintf("%s: interview before application", cand.ID))
		}
	}
	return Check{
		Name:      "Interview date violations",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(errs)),
		Pass:      len(errs) == 0,
	}, errs
}

func checkChannels(channels []domain.Channel) (Check, []string) {
	var errs []string
	for _, ch := range channels {
		if ch.Hired > ch.Applicants {
			errs = append(errs, fmt.Sprintf("%s: hired %d exceeds applicants %d", ch.Name, ch.Hired, ch.Applicants))
		}
		if ch.Cost.IsNegative() {
			errs = append(errs, fmt.Sprintf("%s: negative cost %s", ch.Name, ch.Cost))
		}
		if ch.ConversionRate < 0 || ch.ConversionRate > 100 {
			errs = append(errs, fmt.Sprintf("%s: conversion rate %.2f", ch.Name, ch.ConversionRate))
		}
	}
	return Check{
		Name:      "Channel violations",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(errs)),
		Pass:      len(errs) == 0,
	}, errs
}

func checkFunnel(stages []domain.FunnelStage) (Check, []string) {
	var errs []string
	for i := 1; i < len(stages); i++ {
		if stages[i].Count > stages[i-1].Count {
			errs = append(errs, fmt.Sprintf("%s: %d exceeds previous stage %s (%d)",
				stages[i].Name, stages[i].Count, stages[i-1].Name, stages[i-1].Count))
		}
	}
	return Check{
		Name:      "Funnel increases",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(errs)),
		Pass:      len(errs) == 0,
	}, errs
}

func checkTrend(trend []domain.MonthlyTrend) (Check, []string) {
	var errs []string
	for _, m := range trend {
		if m.Others < 0 {
			errs = append(errs, fmt.Sprintf("%s: negative others %d", m.Month, m.Others))
		}
		if sum := m.CategorySum(); sum > m.TotalApplicants {
			errs = append(errs, fmt.Sprintf("%s: categories %d exceed total %d", m.Month, sum, m.TotalApplicants))
		}
	}
	return Check{
		Name:      "Trend category violations",
		Threshold: "0",
		Actual:    fmt.Sprintf("%d", len(errs)),
		Pass:      len(errs) == 0,
	}, errs
}
