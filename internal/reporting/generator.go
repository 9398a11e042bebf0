package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/idhash"
	"recruiting-lab/internal/metrics"
	"recruiting-lab/internal/verification"
)

const (
	topScorerLimit = 10
	upcomingLimit  = 10
)

// Build assembles a report. view is the candidate subset to report on; nil
// reports the whole population. A nil dataset yields an empty report.
func Build(ds *generation.Dataset, view []domain.Candidate, perHireValue decimal.Decimal, now time.Time) *Report {
	r := &Report{
		GeneratedAt:  now,
		PerHireValue: perHireValue.IntPart(),
	}
	if ds == nil {
		r.Summary = metrics.AggregateMetrics(nil)
		r.Quality = verification.CheckDataset(nil)
		return r
	}
	if view == nil {
		view = ds.Candidates
	}

	r.DatasetAt = ds.GeneratedAt
	r.Fingerprint = idhash.DatasetFingerprint(ds)
	r.Population = len(ds.Candidates)
	r.ViewSize = len(view)

	r.Summary = metrics.AggregateMetrics(view)
	r.Scores = metrics.SummarizeScores(view)
	r.Statuses = metrics.StatusDistribution(view)
	r.Experience = metrics.ExperienceDistribution(view)
	r.Activity = metrics.PeriodCounts(view, now)
	r.TopScorers = metrics.TopScorers(view, metrics.HighScoreThreshold, topScorerLimit)
	r.Candidates = domain.CloneCandidates(view)

	stages := domain.StageCounts(ds.Funnel)
	r.Funnel = append([]domain.FunnelStage(nil), ds.Funnel...)
	r.Conversions = metrics.ComputeConversions(stages)
	r.Dropoff = metrics.ComputeDropoff(stages)
	r.OverallConversion = metrics.OverallConversion(stages)

	r.Channels = metrics.ChannelTable(ds.Channels, perHireValue)
	r.Insights = metrics.ChannelInsights(ds.Channels)

	r.Trend = append([]domain.MonthlyTrend(nil), ds.MonthlyTrend...)
	r.Growth = metrics.ComputeTrendGrowth(ds.MonthlyTrend)
	r.Regional = append([]domain.RegionalStat(nil), ds.Regional...)

	r.Upcoming = metrics.UpcomingInterviews(ds.Interviews, now, upcomingLimit)
	r.Quality = verification.CheckDataset(ds)
	return r
}
