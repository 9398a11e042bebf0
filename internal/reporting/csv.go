package reporting

import (
	"encoding/csv"
	"strconv"
	"strings"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/metrics"
)

func writeCSV(header []string, rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(header)
	_ = w.WriteAll(rows) // flushes; strings.Builder never fails
	return sb.String()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

// RenderCandidatesCSV renders a candidate view as CSV string.
func RenderCandidatesCSV(candidates []domain.Candidate) string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		interview := ""
		if c.InterviewDate != nil {
			interview = c.InterviewDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.Position,
			string(c.Status),
			string(c.Experience),
			c.Location,
			itoa(c.ResumeScore),
			ftoa(c.Rating, 1),
			c.AppliedDate.Format("2006-01-02"),
			c.Email,
			c.Phone,
			itoa(c.SalaryExpectation),
			c.SkillsText(),
			string(c.Source),
			c.PreviousCompany,
			c.Education,
			interview,
		})
	}
	return writeCSV([]string{
		"id", "name", "position", "status", "experience", "location",
		"resume_score", "rating", "applied_date", "email", "phone",
		"salary_expectation", "skills", "source", "previous_company", "education",
		"interview_date",
	}, rows)
}

// RenderChannelsCSV renders channel rows with CPA and ROI as CSV string.
func RenderChannelsCSV(channels []metrics.ChannelRow) string {
	rows := make([][]string, 0, len(channels))
	for _, c := range channels {
		rows = append(rows, []string{
			string(c.Name),
			itoa(c.Applicants),
			itoa(c.Hired),
			c.Cost.StringFixed(0),
			ftoa(c.ConversionRate, 2),
			itoa(c.Clicks),
			ftoa(c.CTR, 2),
			ftoa(c.QualityScore, 1),
			c.CPA.StringFixed(0),
			ftoa(c.ROI, 1),
		})
	}
	return writeCSV([]string{
		"channel", "applicants", "hired", "cost", "conversion_rate",
		"clicks", "ctr", "quality_score", "cpa", "roi",
	}, rows)
}

// RenderFunnelCSV renders funnel stages with drop-off as CSV string.
// dropoff must be aligned with stages.
func RenderFunnelCSV(stages []domain.FunnelStage, dropoff []metrics.StageDropoff) string {
	rows := make([][]string, 0, len(stages))
	for i, s := range stages {
		lost, cumulative := "", ""
		if i < len(dropoff) {
			lost = itoa(dropoff[i].Lost)
			cumulative = ftoa(dropoff[i].CumulativeLossPct, 1)
		}
		rows = append(rows, []string{s.Name, itoa(s.Count), ftoa(s.Percentage, 1), lost, cumulative})
	}
	return writeCSV([]string{"stage", "count", "percentage", "lost", "cumulative_loss_pct"}, rows)
}

// RenderTrendCSV renders the monthly trend as CSV string.
func RenderTrendCSV(trend []domain.MonthlyTrend) string {
	rows := make([][]string, 0, len(trend))
	for _, m := range trend {
		rows = append(rows, []string{
			m.Month,
			itoa(m.TotalApplicants),
			itoa(m.Developers),
			itoa(m.Designers),
			itoa(m.DataAnalysts),
			itoa(m.ProductManagers),
			itoa(m.QAEngineers),
			itoa(m.Others),
			ftoa(m.AvgQualityScore, 1),
			ftoa(m.AvgResponseTimeDays, 1),
		})
	}
	return writeCSV([]string{
		"month", "total_applicants", "developers", "designers", "data_analysts",
		"product_managers", "qa_engineers", "others", "avg_quality_score", "avg_response_time_days",
	}, rows)
}

// CSVFiles maps file names to rendered CSV content for a report.
func CSVFiles(r *Report) map[string]string {
	return map[string]string{
		"candidates.csv": RenderCandidatesCSV(r.Candidates),
		"channels.csv":   RenderChannelsCSV(r.Channels),
		"funnel.csv":     RenderFunnelCSV(r.Funnel, r.Dropoff),
		"trend.csv":      RenderTrendCSV(r.Trend),
	}
}

