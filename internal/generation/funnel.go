package generation

import (
	"fmt"
	"sort"

	"recruiting-lab/internal/domain"
)

// StageSpec is a funnel stage with its share of the initial population.
type StageSpec struct {
	Name  string
	Ratio float64
}

// InitialStageName labels the first funnel stage.
const InitialStageName = "총 지원자"

// DefaultStageSpecs returns the stock funnel shape.
func DefaultStageSpecs() []StageSpec {
	return []StageSpec{
		{Name: InitialStageName, Ratio: 1.00},
		{Name: "서류 통과", Ratio: 0.45},
		{Name: "1차 면접", Ratio: 0.25},
		{Name: "2차 면접", Ratio: 0.12},
		{Name: "최종 면접", Ratio: 0.08},
		{Name: "최종 합격", Ratio: 0.05},
	}
}

// Funnel builds a funnel of total applicants shaped by stages. Counts never
// increase along the sequence.
func Funnel(total int, stages []StageSpec) ([]domain.FunnelStage, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: funnel total %d", ErrInvalidPopulation, total)
	}

	counts := make([]domain.StageCount, len(stages))
	for i, s := range stages {
		ratio := s.Ratio
		if ratio < 0 {
			ratio = 0
		}
		counts[i] = domain.StageCount{Name: s.Name, Count: int(float64(total) * ratio)}
	}
	return withPercentages(counts), nil
}

// FunnelFromCandidates derives funnel counts from candidate statuses. A
// candidate counts toward every stage up to the one it reached; rejected
// candidates count toward the initial and screening stages only.
func FunnelFromCandidates(candidates []domain.Candidate) []domain.FunnelStage {
	stages := domain.AssignableStatuses()
	// drop the rejected terminal state; it is not a funnel step
	stages = stages[:len(stages)-1]

	counts := make([]domain.StageCount, len(stages)+1)
	counts[0] = domain.StageCount{Name: InitialStageName, Count: len(candidates)}
	for i, st := range stages {
		counts[i+1].Name = string(st)
	}

	for _, c := range candidates {
		if c.Status == domain.StatusRejected {
			counts[1].Count++
			continue
		}
		reached := c.Status.Ordinal()
		for k := 1; k <= reached && k < len(counts); k++ {
			counts[k].Count++
		}
	}
	return withPercentages(counts)
}

func withPercentages(counts []domain.StageCount) []domain.FunnelStage {
	out := make([]domain.FunnelStage, len(counts))
	prev := 0
	for i, sc := range counts {
		count := sc.Count
		if i > 0 && count > prev {
			count = prev
		}
		prev = count

		pct := 0.0
		if i == 0 {
			pct = 100
		} else if out[0].Count > 0 {
			pct = domain.Round(float64(count)/float64(out[0].Count)*100, 1)
		}
		out[i] = domain.FunnelStage{Name: sc.Name, Count: count, Percentage: pct}
	}
	return out
}

func sortInterviews(items []domain.Interview) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}
