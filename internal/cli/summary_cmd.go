package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"recruiting-lab/internal/cli/formatter"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/metrics"
)

func newSummaryCmd(app *App) *cobra.Command {
	var bins, recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline metrics, distributions, trend and regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			ds := s.Dataset()
			now := s.Now()

			var b strings.Builder
			m := s.Metrics(nil)
			act := metrics.PeriodCounts(ds.Candidates, now)
			b.WriteString(formatter.StyleBold.Render("Hiring metrics") + "\n")
			b.WriteString(formatter.RenderTable([]string{"Metric", "Value"}, [][]string{
				{"Total applicants", strconv.Itoa(m.TotalApplicants)},
				{"Total hired", strconv.Itoa(m.TotalHired)},
				{"Conversion rate", formatter.Pct(m.OverallConversionRate)},
				{"Average score", strconv.FormatFloat(m.AverageScore, 'f', 1, 64)},
				{"Active positions", strconv.Itoa(m.ActivePositions)},
				{"High score ratio", formatter.Pct(m.HighScoreRatio)},
				{"Applied today", fmt.Sprintf("%d (avg score %.1f)", act.Today, act.AvgScoreToday)},
				{"Applied this week", strconv.Itoa(act.ThisWeek)},
				{"Applied this month", strconv.Itoa(act.ThisMonth)},
			}))

			b.WriteString("\n" + formatter.StyleBold.Render("Status") + "\n")
			b.WriteString(renderDistribution(metrics.StatusDistribution(ds.Candidates)))
			b.WriteString("\n" + formatter.StyleBold.Render("Experience") + "\n")
			b.WriteString(renderDistribution(metrics.ExperienceDistribution(ds.Candidates)))

			hist := metrics.ScoreHistogram(ds.Candidates, bins)
			b.WriteString("\n" + formatter.StyleBold.Render(fmt.Sprintf("Resume scores (mean %.1f)", hist.Mean)) + "\n")
			b.WriteString(renderHistogram(hist))

			b.WriteString("\n" + formatter.StyleBold.Render("Monthly trend") + "\n")
			b.WriteString(renderTrend(ds.MonthlyTrend))

			b.WriteString("\n" + formatter.StyleBold.Render("Application cohorts") + "\n")
			b.WriteString(renderCohort(metrics.Cohort(ds.Candidates)))

			b.WriteString("\n" + formatter.StyleBold.Render("Regions") + "\n")
			b.WriteString(renderRegions(ds.Regional))

			b.WriteString("\n" + formatter.StyleBold.Render("Recent applicants") + "\n")
			b.WriteString(renderCandidateList(metrics.RecentApplicants(ds.Candidates, recent)))

			b.WriteString("\n" + formatter.StyleBold.Render("Top scorers") + "\n")
			b.WriteString(renderCandidateList(metrics.TopScorers(ds.Candidates, metrics.HighScoreThreshold, recent)))

			b.WriteString("\n" + formatter.StyleBold.Render("Upcoming interviews") + "\n")
			b.WriteString(renderInterviews(metrics.UpcomingInterviews(ds.Interviews, now, recent)))

			return writeString(cmd.OutOrStdout(), b.String())
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 8, "Resume score histogram bins")
	cmd.Flags().IntVar(&recent, "limit", 5, "Rows in the recent, top scorer and interview lists")
	return cmd
}

func renderDistribution(dist []metrics.LabelCount) string {
	maxCount := 0
	for _, d := range dist {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}
	rows := make([][]string, 0, len(dist))
	for _, d := range dist {
		rows = append(rows, []string{d.Label, strconv.Itoa(d.Count), formatter.Bar(d.Count, maxCount, 20)})
	}
	return formatter.RenderTable([]string{"Label", "Count", ""}, rows)
}

func renderHistogram(h metrics.Histogram) string {
	maxCount := 0
	for _, bin := range h.Bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	rows := make([][]string, 0, len(h.Bins))
	for _, bin := range h.Bins {
		rows = append(rows, []string{
			fmt.Sprintf("%.0f–%.0f", bin.Lower, bin.Upper),
			strconv.Itoa(bin.Count),
			formatter.Bar(bin.Count, maxCount, 20),
		})
	}
	return formatter.RenderTable([]string{"Range", "Count", ""}, rows)
}

func renderTrend(trend []domain.MonthlyTrend) string {
	growth := metrics.ComputeTrendGrowth(trend)
	rows := make([][]string, 0, len(trend))
	for i, m := range trend {
		rows = append(rows, []string{
			m.Month,
			strconv.Itoa(m.TotalApplicants),
			formatter.Signed(growth[i].GrowthPct),
			strconv.Itoa(m.Developers),
			strconv.Itoa(m.Designers),
			strconv.Itoa(m.DataAnalysts),
			strconv.Itoa(m.ProductManagers),
			strconv.Itoa(m.QAEngineers),
			strconv.Itoa(m.Others),
			strconv.FormatFloat(m.AvgQualityScore, 'f', 1, 64),
		})
	}
	return formatter.RenderTable(
		[]string{"Month", "Applicants", "Growth", "Dev", "Design", "Data", "PM", "QA", "Others", "Quality"}, rows)
}

func renderCohort(rows []metrics.CohortRow) string {
	headers := []string{"Month"}
	for _, st := range domain.PipelineStages {
		headers = append(headers, string(st))
	}
	headers = append(headers, "Total")

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := []string{r.Month}
		for _, st := range domain.PipelineStages {
			line = append(line, strconv.Itoa(r.ByStatus[st]))
		}
		line = append(line, strconv.Itoa(r.Total))
		out = append(out, line)
	}
	return formatter.RenderTable(headers, out)
}

func renderRegions(regions []domain.RegionalStat) string {
	rows := make([][]string, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []string{
			r.Region,
			string(r.Tier),
			strconv.Itoa(r.Count),
			formatter.Pct(r.Percentage),
			r.SalaryText(),
			strconv.FormatFloat(r.AvgQualityScore, 'f', 1, 64),
			r.TopPosition,
		})
	}
	return formatter.RenderTable([]string{"Region", "Tier", "Count", "Share", "Avg Salary", "Quality", "Top Position"}, rows)
}

func renderCandidateList(cands []domain.Candidate) string {
	if len(cands) == 0 {
		return "None.\n"
	}
	rows := make([][]string, 0, len(cands))
	for _, c := range cands {
		rows = append(rows, []string{c.ID, c.Name, c.Position, strconv.Itoa(c.ResumeScore), formatter.Date(c.AppliedDate)})
	}
	return formatter.RenderTable([]string{"ID", "Name", "Position", "Score", "Applied"}, rows)
}

func renderInterviews(ivs []domain.Interview) string {
	if len(ivs) == 0 {
		return "None.\n"
	}
	rows := make([][]string, 0, len(ivs))
	for _, iv := range ivs {
		rows = append(rows, []string{formatter.Date(iv.Date), iv.CandidateID, iv.Name, iv.Position, string(iv.Status)})
	}
	return formatter.RenderTable([]string{"Date", "ID", "Name", "Position", "Stage"}, rows)
}
