package generation

import (
	"fmt"
	"strings"
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/population"
)

const (
	maxDaysBack     = 180
	maxSkills       = 3
	scoreMean       = 75.0
	scoreStddev     = 15.0
	minInterviewLag = 7
	maxInterviewLag = 21
)

var portfolioPositions = map[string]bool{
	"프론트엔드 개발자":  true,
	"UI/UX 디자이너": true,
}

// StatusWeights returns the stage weights (over domain.AssignableStatuses) for a
// candidate who applied daysAgo days ago. Recent applicants sit in early stages.
func StatusWeights(daysAgo int) []float64 {
	switch {
	case daysAgo < 7:
		return []float64{0.50, 0.30, 0.10, 0.05, 0.03, 0.02}
	case daysAgo < 30:
		return []float64{0.20, 0.30, 0.25, 0.15, 0.07, 0.03}
	default:
		return []float64{0.10, 0.15, 0.20, 0.25, 0.20, 0.10}
	}
}

// ResumeScore converts a raw normal draw into a clamped score for the level.
func ResumeScore(raw float64, exp domain.Experience) int {
	score := int(raw * exp.QualityWeight())
	if score < domain.MinResumeScore {
		return domain.MinResumeScore
	}
	if score > domain.MaxResumeScore {
		return domain.MaxResumeScore
	}
	return score
}

// Candidates generates n candidate records with IDs REC0001..RECn.
// now anchors the applied-date window.
func Candidates(m *population.Model, n int, now time.Time) ([]domain.Candidate, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d candidates", ErrInvalidPopulation, n)
	}

	positions := domain.AllPositions()
	statuses := domain.AssignableStatuses()
	experience := make([]string, len(domain.ExperienceLevels))
	for i, e := range domain.ExperienceLevels {
		experience[i] = string(e)
	}
	sources := make([]string, len(domain.Sources))
	for i, s := range domain.Sources {
		sources[i] = string(s)
	}

	out := make([]domain.Candidate, 0, n)
	for i := 0; i < n; i++ {
		name := m.Name()
		position := m.Choice(positions)
		skills := m.Sample(population.SkillPool(position), maxSkills)

		daysBack := m.IntRange(1, maxDaysBack)
		applied := now.Add(-time.Duration(daysBack) * 24 * time.Hour)

		exp := domain.Experience(m.Choice(experience))
		score := ResumeScore(m.Normal(scoreMean, scoreStddev), exp)

		daysAgo := int(now.Sub(applied).Hours() / 24)
		status, err := population.WeightedLabel(m, statuses, StatusWeights(daysAgo))
		if err != nil {
			return nil, fmt.Errorf("draw status for candidate %d: %w", i+1, err)
		}

		c := domain.Candidate{
			ID:                fmt.Sprintf("REC%04d", i+1),
			Name:              name,
			Position:          position,
			Status:            status,
			Experience:        exp,
			Location:          m.Choice(domain.Regions),
			ResumeScore:       score,
			Rating:            domain.Round(m.Uniform(3.0, 5.0), 1),
			AppliedDate:       applied,
			Email:             fmt.Sprintf("%s@email.com", strings.ToLower(strings.ReplaceAll(name, " ", ""))),
			Phone:             fmt.Sprintf("010-%d-%d", m.IntRange(1000, 9999), m.IntRange(1000, 9999)),
			SalaryExpectation: m.IntRange(3000, 8000),
			Skills:            skills,
			Source:            domain.Source(m.Choice(sources)),
			Education:         m.Choice(domain.EducationLevels),
			LinkedInURL:       fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(name)),
		}

		if exp == domain.ExperienceNewGrad {
			c.PreviousCompany = string(domain.ExperienceNewGrad)
		} else {
			c.PreviousCompany = m.Company()
		}
		if portfolioPositions[position] {
			url := fmt.Sprintf("https://portfolio.%s.com", strings.ToLower(name))
			c.PortfolioURL = &url
		}
		if strings.Contains(position, "개발자") || strings.Contains(position, "엔지니어") {
			url := fmt.Sprintf("https://github.com/%s", strings.ToLower(name))
			c.GithubURL = &url
		}
		if status.IsInterview() {
			when := applied.Add(time.Duration(m.IntRange(minInterviewLag, maxInterviewLag)) * 24 * time.Hour)
			c.InterviewDate = &when
		}
		c.Notes = fmt.Sprintf("%s님은 %s 경력 %s으로 %s 스킬을 보유하고 있습니다.",
			name, position, exp, c.SkillsText())

		out = append(out, c)
	}
	return out, nil
}

// InterviewSchedule lists candidates with an interview date, earliest first.
// Ties keep candidate order.
func InterviewSchedule(candidates []domain.Candidate) []domain.Interview {
	var out []domain.Interview
	for _, c := range candidates {
		if c.InterviewDate == nil {
			continue
		}
		out = append(out, domain.Interview{
			CandidateID: c.ID,
			Name:        c.Name,
			Position:    c.Position,
			Status:      c.Status,
			Date:        *c.InterviewDate,
		})
	}
	sortInterviews(out)
	return out
}
