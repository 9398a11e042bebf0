package domain

// FunnelStage is one step of the recruiting funnel.
type FunnelStage struct {
	Name  string
	Count int
	// Percentage is Count relative to the first stage, one decimal.
	Percentage float64
}

// StageCount is a bare (name, count) pair fed to funnel computations.
type StageCount struct {
	Name  string
	Count int
}

// StageCounts strips percentages from a funnel.
func StageCounts(stages []FunnelStage) []StageCount {
	out := make([]StageCount, len(stages))
	for i, s := range stages {
		out[i] = StageCount{Name: s.Name, Count: s.Count}
	}
	return out
}
