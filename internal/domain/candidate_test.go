package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_CloneIsDeep(t *testing.T) {
	url := "https://github.com/김민수"
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	orig := Candidate{
		ID:            "REC0001",
		Skills:        []string{"Go", "SQL"},
		GithubURL:     &url,
		InterviewDate: &when,
	}

	clone := orig.Clone()
	clone.Skills[0] = "Rust"
	*clone.GithubURL = "changed"
	*clone.InterviewDate = when.AddDate(0, 0, 1)

	assert.Equal(t, "Go", orig.Skills[0])
	assert.Equal(t, "https://github.com/김민수", *orig.GithubURL)
	assert.Equal(t, when, *orig.InterviewDate)
}

func TestCloneCandidates_Nil(t *testing.T) {
	assert.Nil(t, CloneCandidates(nil))
}

func TestExperience_QualityWeight(t *testing.T) {
	tests := []struct {
		level Experience
		want  float64
	}{
		{"신입", 0.80},
		{"1년", 0.85},
		{"2년", 0.90},
		{"3년", 0.95},
		{"4년", 1.00},
		{"10년 이상", 1.00},
		{"unknown", 1.00},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.QualityWeight(), string(tt.level))
	}
}

func TestStatus_Ordering(t *testing.T) {
	assigned := AssignableStatuses()
	require.Len(t, assigned, 6)
	assert.NotContains(t, assigned, StatusReceived)
	assert.Equal(t, StatusScreening, assigned[0])

	assert.Equal(t, 0, StatusReceived.Ordinal())
	assert.Equal(t, 5, StatusHired.Ordinal())
	assert.Equal(t, -1, Status("보류").Ordinal())
	assert.False(t, Status("보류").IsValid())

	assert.True(t, StatusSecondInterview.IsInterview())
	assert.False(t, StatusHired.IsInterview())
}

func TestAllPositions_Flattened(t *testing.T) {
	positions := AllPositions()
	assert.Len(t, positions, 16)
	assert.Equal(t, "프론트엔드 개발자", positions[0])
	assert.Equal(t, "테스트 엔지니어", positions[len(positions)-1])
}

func TestRound(t *testing.T) {
	assert.Equal(t, 59.9, Round(226.0/377.0*100, 1))
	assert.Equal(t, 66.8, Round(151.0/226.0*100, 1))
	assert.Equal(t, 4.52, Round(4.5249, 2))
}
