package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/domain"
)

func TestStatusDistribution(t *testing.T) {
	dist := StatusDistribution([]domain.Candidate{
		cand("a", "p", domain.StatusHired, 60),
		cand("b", "p", domain.StatusHired, 60),
		cand("c", "p", domain.StatusScreening, 60),
	})
	require.Len(t, dist, len(domain.PipelineStages))

	byLabel := map[string]int{}
	total := 0
	for _, d := range dist {
		byLabel[d.Label] = d.Count
		total += d.Count
	}
	assert.Equal(t, 2, byLabel[string(domain.StatusHired)])
	assert.Equal(t, 1, byLabel[string(domain.StatusScreening)])
	assert.Equal(t, 3, total)
	assert.Equal(t, string(domain.PipelineStages[0]), dist[0].Label)
}

func TestExperienceDistribution(t *testing.T) {
	dist := ExperienceDistribution([]domain.Candidate{cand("a", "p", domain.StatusHired, 60)})
	require.Len(t, dist, len(domain.ExperienceLevels))
	assert.Equal(t, string(domain.ExperienceNewGrad), dist[0].Label)
	assert.Equal(t, 1, dist[0].Count)
}

func TestScoreHistogram(t *testing.T) {
	cands := []domain.Candidate{
		cand("a", "p", domain.StatusReceived, domain.MinResumeScore),
		cand("b", "p", domain.StatusReceived, domain.MaxResumeScore),
		cand("c", "p", domain.StatusReceived, 74),
	}
	h := ScoreHistogram(cands, 4)
	require.Len(t, h.Bins, 4)

	assert.Equal(t, 1, h.Bins[0].Count)
	assert.Equal(t, 1, h.Bins[2].Count)
	assert.Equal(t, 1, h.Bins[3].Count, "max score lands in the last bin")
	assert.InDelta(t, float64(domain.MaxResumeScore), h.Bins[3].Upper, 1e-9)
	assert.InDelta(t, 74.0, h.Mean, 1e-9)

	assert.Len(t, ScoreHistogram(nil, 0).Bins, 20)
}

func TestCohort(t *testing.T) {
	may := cand("a", "p", domain.StatusHired, 60)
	may.AppliedDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	june1 := cand("b", "p", domain.StatusHired, 60)
	june2 := cand("c", "p", domain.StatusRejected, 60)

	rows := Cohort([]domain.Candidate{june1, may, june2})
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05", rows[0].Month)
	assert.Equal(t, 1, rows[0].Total)
	assert.Equal(t, "2024-06", rows[1].Month)
	assert.Equal(t, 2, rows[1].Total)
	assert.Equal(t, 1, rows[1].ByStatus[domain.StatusRejected])
}
