package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/domain"
)

func sampleStages() []domain.StageCount {
	return []domain.StageCount{
		{Name: "총 지원자", Count: 3014},
		{Name: "서류 통과", Count: 1507},
		{Name: "1차 면접", Count: 754},
		{Name: "2차 면접", Count: 377},
		{Name: "최종 면접", Count: 226},
		{Name: "최종 합격", Count: 151},
	}
}

func TestComputeConversions(t *testing.T) {
	conv := ComputeConversions(sampleStages())
	require.Len(t, conv, 5)

	want := []float64{50.0, 50.0, 50.0, 59.9, 66.8}
	for i, c := range conv {
		assert.InDelta(t, want[i], c.Rate, 1e-9, "stage %d", i)
	}
	assert.Equal(t, "총 지원자", conv[0].From)
	assert.Equal(t, "서류 통과", conv[0].To)
}

func TestComputeConversions_Short(t *testing.T) {
	assert.Empty(t, ComputeConversions(nil))
	assert.Empty(t, ComputeConversions([]domain.StageCount{{Name: "a", Count: 10}}))
}

func TestComputeConversions_EmptyEarlierStage(t *testing.T) {
	conv := ComputeConversions([]domain.StageCount{{Name: "a", Count: 0}, {Name: "b", Count: 0}})
	require.Len(t, conv, 1)
	assert.Zero(t, conv[0].Rate)
}

func TestComputeDropoff(t *testing.T) {
	drop := ComputeDropoff(sampleStages())
	require.Len(t, drop, 6)

	assert.Zero(t, drop[0].Lost)
	assert.Zero(t, drop[0].CumulativeLossPct)
	assert.Equal(t, 1507, drop[1].Lost)
	assert.InDelta(t, 50.0, drop[1].CumulativeLossPct, 1e-9)
	assert.Equal(t, 75, drop[5].Lost)
	assert.InDelta(t, 95.0, drop[5].CumulativeLossPct, 1e-9)
}

func TestOverallConversion(t *testing.T) {
	assert.InDelta(t, 5.0, OverallConversion(sampleStages()), 1e-9)
	assert.Zero(t, OverallConversion(nil))
}
