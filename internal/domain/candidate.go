package domain

import (
	"fmt"
	"strings"
	"time"
)

// Resume score bounds. Generated scores are clamped into [MinResumeScore, MaxResumeScore].
const (
	MinResumeScore = 50
	MaxResumeScore = 98
)

// Candidate represents one applicant in a generated population.
// Records are snapshots: derived views hold clones, never the originals.
type Candidate struct {
	// ID has the form REC0001, 1-indexed in generation order.
	ID          string
	Name        string
	Position    string
	Status      Status
	Experience  Experience
	Location    string
	ResumeScore int
	Rating      float64
	AppliedDate time.Time

	Email string
	Phone string
	// SalaryExpectation is in 만원.
	SalaryExpectation int
	Skills            []string
	Source            Source
	PreviousCompany   string
	Education         string
	PortfolioURL      *string
	GithubURL         *string
	LinkedInURL       string
	// InterviewDate is set only while the candidate is in an interview stage.
	InterviewDate *time.Time
	Notes         string
}

// Clone returns a deep copy of c.
func (c Candidate) Clone() Candidate {
	out := c
	if c.Skills != nil {
		out.Skills = make([]string, len(c.Skills))
		copy(out.Skills, c.Skills)
	}
	if c.PortfolioURL != nil {
		v := *c.PortfolioURL
		out.PortfolioURL = &v
	}
	if c.GithubURL != nil {
		v := *c.GithubURL
		out.GithubURL = &v
	}
	if c.InterviewDate != nil {
		v := *c.InterviewDate
		out.InterviewDate = &v
	}
	return out
}

// SkillsText joins skills the way they are displayed and searched.
func (c Candidate) SkillsText() string {
	return strings.Join(c.Skills, ", ")
}

// SalaryText formats the salary expectation, e.g. "4500만원".
func (c Candidate) SalaryText() string {
	return fmt.Sprintf("%d만원", c.SalaryExpectation)
}

// CloneCandidates deep-copies a candidate slice.
func CloneCandidates(in []Candidate) []Candidate {
	if in == nil {
		return nil
	}
	out := make([]Candidate, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
