package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Recruiting Analytics Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Candidates: %d of %d | Per-hire value: %d\n\n", r.ViewSize, r.Population, r.PerHireValue))
	if r.Fingerprint != "" {
		sb.WriteString(fmt.Sprintf("Dataset fingerprint: `%s`\n\n", r.Fingerprint))
	}

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Applicants | %d |\n", r.Summary.TotalApplicants))
	sb.WriteString(fmt.Sprintf("| Total Hired | %d |\n", r.Summary.TotalHired))
	sb.WriteString(fmt.Sprintf("| Conversion Rate | %.1f%% |\n", r.Summary.OverallConversionRate))
	sb.WriteString(fmt.Sprintf("| Average Score | %.1f |\n", r.Summary.AverageScore))
	sb.WriteString(fmt.Sprintf("| Active Positions | %d |\n", r.Summary.ActivePositions))
	sb.WriteString(fmt.Sprintf("| High Score Ratio | %.1f%% |\n", r.Summary.HighScoreRatio))
	sb.WriteString(fmt.Sprintf("| Applied Today / Week / Month | %d / %d / %d |\n",
		r.Activity.Today, r.Activity.ThisWeek, r.Activity.ThisMonth))
	sb.WriteString("\n")

	// Scores
	if r.Scores.Count > 0 {
		sb.WriteString("## Resume Scores\n\n")
		sb.WriteString("| Mean | Median | P10 | P90 | Min | Max | Stddev |\n")
		sb.WriteString("|------|--------|-----|-----|-----|-----|--------|\n")
		sb.WriteString(fmt.Sprintf("| %.1f | %.1f | %.1f | %.1f | %d | %d | %.2f |\n\n",
			r.Scores.Mean, r.Scores.Median, r.Scores.P10, r.Scores.P90,
			r.Scores.Min, r.Scores.Max, r.Scores.Stddev))
	}

	// Status distribution
	sb.WriteString("## Status Distribution\n\n")
	if r.ViewSize > 0 {
		sb.WriteString("| Status | Count |\n")
		sb.WriteString("|--------|-------|\n")
		for _, s := range r.Statuses {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", s.Label, s.Count))
		}
	} else {
		sb.WriteString("No candidates match.\n")
	}
	sb.WriteString("\n")

	// Funnel
	sb.WriteString("## Funnel\n\n")
	if len(r.Funnel) > 0 {
		sb.WriteString("| Stage | Count | % of Total | Lost | Cumulative Loss % |\n")
		sb.WriteString("|-------|-------|------------|------|-------------------|\n")
		for i, st := range r.Funnel {
			d := r.Dropoff[i]
			sb.WriteString(fmt.Sprintf("| %s | %d | %.1f | %d | %.1f |\n",
				st.Name, st.Count, st.Percentage, d.Lost, d.CumulativeLossPct))
		}
		sb.WriteString("\n")
		for _, c := range r.Conversions {
			sb.WriteString(fmt.Sprintf("- %s → %s: %.1f%%\n", c.From, c.To, c.Rate))
		}
		sb.WriteString(fmt.Sprintf("\nOverall conversion: %.1f%%\n", r.OverallConversion))
	} else {
		sb.WriteString("No funnel data available.\n")
	}
	sb.WriteString("\n")

	// Channels
	sb.WriteString("## Channels\n\n")
	if len(r.Channels) > 0 {
		sb.WriteString("| Channel | Applicants | Hired | Conversion % | Cost | CPA | ROI % |\n")
		sb.WriteString("|---------|------------|-------|--------------|------|-----|-------|\n")
		for _, c := range r.Channels {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.2f | %s | %s | %.1f |\n",
				c.Name, c.Applicants, c.Hired, c.ConversionRate,
				c.Cost.StringFixed(0), c.CPA.StringFixed(0), c.ROI))
		}
		sb.WriteString("\n")
		if r.Insights.Best != nil {
			sb.WriteString(fmt.Sprintf("- Best conversion: %s (%.2f%%)\n", r.Insights.Best.Name, r.Insights.Best.ConversionRate))
		}
		if r.Insights.Worst != nil {
			sb.WriteString(fmt.Sprintf("- Worst conversion: %s (%.2f%%)\n", r.Insights.Worst.Name, r.Insights.Worst.ConversionRate))
		}
		if r.Insights.BestFree != nil {
			sb.WriteString(fmt.Sprintf("- Best free channel: %s (%.2f%%)\n", r.Insights.BestFree.Name, r.Insights.BestFree.ConversionRate))
		}
	} else {
		sb.WriteString("No channel data available.\n")
	}
	sb.WriteString("\n")

	// Monthly trend
	sb.WriteString("## Monthly Trend\n\n")
	if len(r.Trend) > 0 {
		sb.WriteString("| Month | Applicants | Growth % | Developers | Designers | Data | PM | QA | Others |\n")
		sb.WriteString("|-------|------------|----------|------------|-----------|------|----|----|--------|\n")
		for i, m := range r.Trend {
			sb.WriteString(fmt.Sprintf("| %s | %d | %.1f | %d | %d | %d | %d | %d | %d |\n",
				m.Month, m.TotalApplicants, r.Growth[i].GrowthPct,
				m.Developers, m.Designers, m.DataAnalysts, m.ProductManagers, m.QAEngineers, m.Others))
		}
	} else {
		sb.WriteString("No trend data available.\n")
	}
	sb.WriteString("\n")

	// Regions
	sb.WriteString("## Regions\n\n")
	if len(r.Regional) > 0 {
		sb.WriteString("| Region | Count | % | Avg Salary | Avg Quality | Top Position |\n")
		sb.WriteString("|--------|-------|---|------------|-------------|--------------|\n")
		for _, rs := range r.Regional {
			sb.WriteString(fmt.Sprintf("| %s | %d | %.1f | %s | %.1f | %s |\n",
				rs.Region, rs.Count, rs.Percentage, rs.SalaryText(), rs.AvgQualityScore, rs.TopPosition))
		}
	} else {
		sb.WriteString("No regional data available.\n")
	}
	sb.WriteString("\n")

	// Interviews
	sb.WriteString("## Upcoming Interviews\n\n")
	if len(r.Upcoming) > 0 {
		sb.WriteString("| Date | Candidate | Position | Stage |\n")
		sb.WriteString("|------|-----------|----------|-------|\n")
		for _, iv := range r.Upcoming {
			sb.WriteString(fmt.Sprintf("| %s | %s (%s) | %s | %s |\n",
				iv.Date.Format("2006-01-02"), iv.Name, iv.CandidateID, iv.Position, iv.Status))
		}
	} else {
		sb.WriteString("No upcoming interviews.\n")
	}
	sb.WriteString("\n")

	// Data quality
	sb.WriteString("## Data Quality\n\n")
	if r.Quality != nil && len(r.Quality.Checks) > 0 {
		sb.WriteString("| Check | Threshold | Actual | Result |\n")
		sb.WriteString("|-------|-----------|--------|--------|\n")
		for _, c := range r.Quality.Checks {
			result := "PASS"
			if !c.Pass {
				result = "FAIL"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.Name, c.Threshold, c.Actual, result))
		}
		for _, e := range r.Quality.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
	} else {
		sb.WriteString("No quality checks available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
