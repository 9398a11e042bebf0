package generation

import (
	"fmt"
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/population"
)

// Params collects the inputs of one full generation pass.
type Params struct {
	Candidates          int
	Channels            []ChannelSpec
	Regions             []RegionSpec
	RegionalPopulation  int
	TrendStart          time.Time
	TrendEnd            time.Time
	TrendBaseApplicants int
	FunnelTotal         int
	FunnelStages        []StageSpec
}

// DefaultParams returns the stock generation profile.
func DefaultParams() Params {
	return Params{
		Candidates:          100,
		Channels:            DefaultChannelSpecs(),
		Regions:             DefaultRegionSpecs(),
		RegionalPopulation:  3500,
		TrendStart:          time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		TrendEnd:            time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		TrendBaseApplicants: 400,
		FunnelTotal:         3500,
		FunnelStages:        DefaultStageSpecs(),
	}
}

// Dataset is the five tabular results of one generation pass plus the
// interview schedule derived from the candidates.
type Dataset struct {
	GeneratedAt  time.Time
	Candidates   []domain.Candidate
	Channels     []domain.Channel
	MonthlyTrend []domain.MonthlyTrend
	Regional     []domain.RegionalStat
	Funnel       []domain.FunnelStage
	Interviews   []domain.Interview
}

// GenerateAll runs every generator once against m.
func GenerateAll(m *population.Model, p Params, now time.Time) (*Dataset, error) {
	candidates, err := Candidates(m, p.Candidates, now)
	if err != nil {
		return nil, fmt.Errorf("generate candidates: %w", err)
	}

	channels, err := Channels(m, p.Channels)
	if err != nil {
		return nil, fmt.Errorf("generate channels: %w", err)
	}

	trend, err := MonthlyTrends(m, p.TrendStart, p.TrendEnd, p.TrendBaseApplicants)
	if err != nil {
		return nil, fmt.Errorf("generate monthly trend: %w", err)
	}

	regional, err := Regional(m, p.Regions, p.RegionalPopulation)
	if err != nil {
		return nil, fmt.Errorf("generate regional: %w", err)
	}

	funnel, err := Funnel(p.FunnelTotal, p.FunnelStages)
	if err != nil {
		return nil, fmt.Errorf("generate funnel: %w", err)
	}

	return &Dataset{
		GeneratedAt:  now,
		Candidates:   candidates,
		Channels:     channels,
		MonthlyTrend: trend,
		Regional:     regional,
		Funnel:       funnel,
		Interviews:   InterviewSchedule(candidates),
	}, nil
}

// Clone deep-copies the dataset so callers can hand it out without aliasing.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{
		GeneratedAt: d.GeneratedAt,
		Candidates:  domain.CloneCandidates(d.Candidates),
	}
	out.Channels = append([]domain.Channel(nil), d.Channels...)
	out.MonthlyTrend = append([]domain.MonthlyTrend(nil), d.MonthlyTrend...)
	out.Regional = append([]domain.RegionalStat(nil), d.Regional...)
	out.Funnel = append([]domain.FunnelStage(nil), d.Funnel...)
	out.Interviews = append([]domain.Interview(nil), d.Interviews...)
	return out
}
