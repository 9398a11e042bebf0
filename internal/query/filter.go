// Package query derives filtered, sorted and paginated views over a
// candidate population. Views are deep copies; the input is never modified.
package query

import (
	"strings"
	"time"

	"recruiting-lab/internal/domain"
)

// DateRange bounds the applied date by calendar day, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ScoreRange bounds the resume score, inclusive on both ends.
type ScoreRange struct {
	Min int
	Max int
}

// Criteria narrows a candidate view. Every set criterion must match.
// Empty sets and nil ranges do not restrict.
type Criteria struct {
	Positions  []string
	Statuses   []domain.Status
	Locations  []string
	DateRange  *DateRange
	ScoreRange *ScoreRange
	// SearchTerm matches name, position or skills, case-insensitively.
	SearchTerm string
}

// Empty reports whether c restricts nothing.
func (c Criteria) Empty() bool {
	return len(c.Positions) == 0 &&
		len(c.Statuses) == 0 &&
		len(c.Locations) == 0 &&
		c.DateRange == nil &&
		c.ScoreRange == nil &&
		strings.TrimSpace(c.SearchTerm) == ""
}

// Filter returns the candidates matching every criterion, in input order.
func Filter(candidates []domain.Candidate, c Criteria) []domain.Candidate {
	if c.Empty() {
		return domain.CloneCandidates(candidates)
	}

	m := newMatcher(c)
	out := make([]domain.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if m.match(cand) {
			out = append(out, cand.Clone())
		}
	}
	return out
}

type matcher struct {
	positions map[string]struct{}
	statuses  map[domain.Status]struct{}
	locations map[string]struct{}
	dates     *DateRange
	scores    *ScoreRange
	term      string
}

func newMatcher(c Criteria) matcher {
	return matcher{
		positions: toSet(c.Positions),
		statuses:  toSet(c.Statuses),
		locations: toSet(c.Locations),
		dates:     c.DateRange,
		scores:    c.ScoreRange,
		term:      strings.ToLower(strings.TrimSpace(c.SearchTerm)),
	}
}

func (m matcher) match(c domain.Candidate) bool {
	if !inSet(m.positions, c.Position) || !inSet(m.statuses, c.Status) || !inSet(m.locations, c.Location) {
		return false
	}
	if m.dates != nil {
		day := calendarDay(c.AppliedDate)
		if day.Before(calendarDay(m.dates.Start)) || day.After(calendarDay(m.dates.End)) {
			return false
		}
	}
	if m.scores != nil && (c.ResumeScore < m.scores.Min || c.ResumeScore > m.scores.Max) {
		return false
	}
	if m.term != "" {
		return strings.Contains(strings.ToLower(c.Name), m.term) ||
			strings.Contains(strings.ToLower(c.Position), m.term) ||
			strings.Contains(strings.ToLower(c.SkillsText()), m.term)
	}
	return true
}

func toSet[T comparable](items []T) map[T]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// inSet treats a nil set as unrestricted.
func inSet[T comparable](set map[T]struct{}, v T) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
