// Package verification checks generated datasets. Replay verification
// regenerates a stored pass and compares it field by field; invariant checks
// validate the structural guarantees of a single dataset.
package verification

import (
	"fmt"
	"math"
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
)

// FloatTolerance is the tolerance for float64 comparisons.
const FloatTolerance = 1e-7

// FieldDivergence represents a mismatch between stored and replayed values.
type FieldDivergence struct {
	Field    string      // field path, e.g. Candidates[3].ResumeScore
	Expected interface{} // stored value
	Actual   interface{} // replayed value
}

// VerificationResult contains the result of replaying one session pass.
type VerificationResult struct {
	SessionID   string
	Seed        int64
	Pass        int
	Match       bool
	Divergences []FieldDivergence
	// Fingerprint identifies the stored dataset.
	Fingerprint string
}

// NewResult builds a result from the divergences of a comparison.
func NewResult(sessionID string, seed int64, pass int, divergences []FieldDivergence) *VerificationResult {
	return &VerificationResult{
		SessionID:   sessionID,
		Seed:        seed,
		Pass:        pass,
		Match:       len(divergences) == 0,
		Divergences: divergences,
	}
}

type diff struct {
	out []FieldDivergence
}

func (d *diff) check(equal bool, field string, expected, actual interface{}) {
	if !equal {
		d.out = append(d.out, FieldDivergence{Field: field, Expected: expected, Actual: actual})
	}
}

func (d *diff) text(field, expected, actual string) {
	d.check(expected == actual, field, expected, actual)
}

func (d *diff) whole(field string, expected, actual int) {
	d.check(expected == actual, field, expected, actual)
}

func (d *diff) real(field string, expected, actual float64) {
	d.check(floatEquals(expected, actual), field, expected, actual)
}

func (d *diff) instant(field string, expected, actual time.Time) {
	d.check(expected.Equal(actual), field, expected, actual)
}

// length compares slice lengths and reports whether element-wise comparison
// can proceed.
func (d *diff) length(field string, expected, actual int) bool {
	d.check(expected == actual, field+".len", expected, actual)
	return expected == actual
}

// CompareDatasets compares two datasets and returns divergences.
// Uses FloatTolerance for float64 comparisons.
func CompareDatasets(stored, replayed *generation.Dataset) []FieldDivergence {
	d := &diff{}
	if stored == nil || replayed == nil {
		d.check(stored == nil && replayed == nil, "Dataset", stored != nil, replayed != nil)
		return d.out
	}

	d.instant("GeneratedAt", stored.GeneratedAt, replayed.GeneratedAt)

	if d.length("Candidates", len(stored.Candidates), len(replayed.Candidates)) {
		for i := range stored.Candidates {
			compareCandidate(d, fmt.Sprintf("Candidates[%d]", i), stored.Candidates[i], replayed.Candidates[i])
		}
	}
	if d.length("Channels", len(stored.Channels), len(replayed.Channels)) {
		for i := range stored.Channels {
			compareChannel(d, fmt.Sprintf("Channels[%d]", i), stored.Channels[i], replayed.Channels[i])
		}
	}
	if d.length("MonthlyTrend", len(stored.MonthlyTrend), len(replayed.MonthlyTrend)) {
		for i := range stored.MonthlyTrend {
			compareTrend(d, fmt.Sprintf("MonthlyTrend[%d]", i), stored.MonthlyTrend[i], replayed.MonthlyTrend[i])
		}
	}
	if d.length("Regional", len(stored.Regional), len(replayed.Regional)) {
		for i := range stored.Regional {
			compareRegion(d, fmt.Sprintf("Regional[%d]", i), stored.Regional[i], replayed.Regional[i])
		}
	}
	if d.length("Funnel", len(stored.Funnel), len(replayed.Funnel)) {
		for i, s := range stored.Funnel {
			r := replayed.Funnel[i]
			p := fmt.Sprintf("Funnel[%d]", i)
			d.text(p+".Name", s.Name, r.Name)
			d.whole(p+".Count", s.Count, r.Count)
			d.real(p+".Percentage", s.Percentage, r.Percentage)
		}
	}
	if d.length("Interviews", len(stored.Interviews), len(replayed.Interviews)) {
		for i, s := range stored.Interviews {
			r := replayed.Interviews[i]
			p := fmt.Sprintf("Interviews[%d]", i)
			d.text(p+".CandidateID", s.CandidateID, r.CandidateID)
			d.instant(p+".Date", s.Date, r.Date)
		}
	}
	return d.out
}

func compareCandidate(d *diff, p string, s, r domain.Candidate) {
	d.text(p+".ID", s.ID, r.ID)
	d.text(p+".Name", s.Name, r.Name)
	d.text(p+".Position", s.Position, r.Position)
	d.text(p+".Status", string(s.Status), string(r.Status))
	d.text(p+".Experience", string(s.Experience), string(r.Experience))
	d.text(p+".Location", s.Location, r.Location)
	d.whole(p+".ResumeScore", s.ResumeScore, r.ResumeScore)
	d.real(p+".Rating", s.Rating, r.Rating)
	d.instant(p+".AppliedDate", s.AppliedDate, r.AppliedDate)
	d.text(p+".Email", s.Email, r.Email)
	d.text(p+".Phone", s.Phone, r.Phone)
	d.whole(p+".SalaryExpectation", s.SalaryExpectation, r.SalaryExpectation)
	d.text(p+".Skills", s.SkillsText(), r.SkillsText())
	d.text(p+".Source", string(s.Source), string(r.Source))
	d.text(p+".PreviousCompany", s.PreviousCompany, r.PreviousCompany)
	d.text(p+".Education", s.Education, r.Education)
	d.text(p+".PortfolioURL", derefString(s.PortfolioURL), derefString(r.PortfolioURL))
	d.text(p+".GithubURL", derefString(s.GithubURL), derefString(r.GithubURL))
	d.text(p+".LinkedInURL", s.LinkedInURL, r.LinkedInURL)
	d.text(p+".Notes", s.Notes, r.Notes)

	switch {
	case s.InterviewDate == nil && r.InterviewDate == nil:
	case s.InterviewDate == nil || r.InterviewDate == nil:
		d.check(false, p+".InterviewDate", s.InterviewDate, r.InterviewDate)
	default:
		d.instant(p+".InterviewDate", *s.InterviewDate, *r.InterviewDate)
	}
}

func compareChannel(d *diff, p string, s, r domain.Channel) {
	d.text(p+".Name", string(s.Name), string(r.Name))
	d.whole(p+".Applicants", s.Applicants, r.Applicants)
	d.whole(p+".Hired", s.Hired, r.Hired)
	d.check(s.Cost.Equal(r.Cost), p+".Cost", s.Cost.String(), r.Cost.String())
	d.real(p+".ConversionRate", s.ConversionRate, r.ConversionRate)
	d.whole(p+".Clicks", s.Clicks, r.Clicks)
	d.real(p+".CTR", s.CTR, r.CTR)
	d.real(p+".QualityScore", s.QualityScore, r.QualityScore)
}

func compareTrend(d *diff, p string, s, r domain.MonthlyTrend) {
	d.text(p+".Month", s.Month, r.Month)
	d.whole(p+".TotalApplicants", s.TotalApplicants, r.TotalApplicants)
	rc := r.Categories()
	for i, c := range s.Categories() {
		d.whole(p+"."+c.Name, c.Count, rc[i].Count)
	}
	d.real(p+".AvgQualityScore", s.AvgQualityScore, r.AvgQualityScore)
	d.real(p+".AvgResponseTimeDays", s.AvgResponseTimeDays, r.AvgResponseTimeDays)
}

func compareRegion(d *diff, p string, s, r domain.RegionalStat) {
	d.text(p+".Region", s.Region, r.Region)
	d.text(p+".Tier", string(s.Tier), string(r.Tier))
	d.whole(p+".Count", s.Count, r.Count)
	d.real(p+".Percentage", s.Percentage, r.Percentage)
	d.whole(p+".AvgSalaryExpectation", s.AvgSalaryExpectation, r.AvgSalaryExpectation)
	d.real(p+".AvgQualityScore", s.AvgQualityScore, r.AvgQualityScore)
	d.text(p+".TopPosition", s.TopPosition, r.TopPosition)
}

// floatEquals compares two float64 values within FloatTolerance.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= FloatTolerance
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
