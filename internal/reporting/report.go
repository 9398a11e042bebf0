// Package reporting assembles a generated dataset and its derived metrics
// into a report and renders it as Markdown, CSV or an Excel workbook.
package reporting

import (
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/metrics"
	"recruiting-lab/internal/verification"
)

// Report is a point-in-time snapshot of one session's dataset.
type Report struct {
	// Metadata
	GeneratedAt  time.Time
	DatasetAt    time.Time
	Population   int // candidates in the dataset
	ViewSize     int // candidates in the reported view
	PerHireValue int64
	Fingerprint  string // dataset fingerprint

	// Candidate view
	Summary    metrics.HiringMetrics
	Scores     metrics.ScoreSummary
	Statuses   []metrics.LabelCount
	Experience []metrics.LabelCount
	Activity   metrics.PeriodActivity
	TopScorers []domain.Candidate
	Candidates []domain.Candidate

	// Funnel
	Funnel            []domain.FunnelStage
	Conversions       []metrics.StageConversion
	Dropoff           []metrics.StageDropoff
	OverallConversion float64

	// Channels (input order)
	Channels []metrics.ChannelRow
	Insights metrics.ChannelInsight

	// Trend and regions
	Trend    []domain.MonthlyTrend
	Growth   []metrics.TrendGrowth
	Regional []domain.RegionalStat

	// Interviews on or after GeneratedAt
	Upcoming []domain.Interview

	// Dataset invariant checks
	Quality *verification.CheckResult
}
