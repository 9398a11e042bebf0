package reporting

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetSummary    = "Summary"
	SheetCandidates = "Candidates"
	SheetChannels   = "Channels"
	SheetFunnel     = "Funnel"
	SheetTrend      = "Trend"
	SheetRegions    = "Regions"
	SheetQuality    = "Quality"
)

// WriteXLSX writes the report as an Excel workbook with one sheet per table.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Dataset Fingerprint", r.Fingerprint},
		{"Total Applicants", r.Summary.TotalApplicants},
		{"Total Hired", r.Summary.TotalHired},
		{"Conversion Rate %", r.Summary.OverallConversionRate},
		{"Average Score", r.Summary.AverageScore},
		{"Active Positions", r.Summary.ActivePositions},
		{"High Score Ratio %", r.Summary.HighScoreRatio},
		{"Funnel Overall Conversion %", r.OverallConversion},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	candidates := [][]interface{}{{"ID", "Name", "Position", "Status", "Experience", "Location", "Score", "Rating", "Applied", "Salary", "Skills", "Source"}}
	for _, c := range r.Candidates {
		candidates = append(candidates, []interface{}{
			c.ID, c.Name, c.Position, string(c.Status), string(c.Experience), c.Location,
			c.ResumeScore, c.Rating, c.AppliedDate.Format("2006-01-02"), c.SalaryExpectation,
			c.SkillsText(), string(c.Source),
		})
	}

	channels := [][]interface{}{{"Channel", "Applicants", "Hired", "Cost", "Conversion %", "CPA", "ROI %"}}
	for _, c := range r.Channels {
		channels = append(channels, []interface{}{
			string(c.Name), c.Applicants, c.Hired, c.Cost.IntPart(), c.ConversionRate, c.CPA.IntPart(), c.ROI,
		})
	}

	funnel := [][]interface{}{{"Stage", "Count", "Percentage", "Lost", "Cumulative Loss %"}}
	for i, s := range r.Funnel {
		row := []interface{}{s.Name, s.Count, s.Percentage}
		if i < len(r.Dropoff) {
			row = append(row, r.Dropoff[i].Lost, r.Dropoff[i].CumulativeLossPct)
		}
		funnel = append(funnel, row)
	}

	trend := [][]interface{}{{"Month", "Applicants", "Developers", "Designers", "Data Analysts", "Product Managers", "QA Engineers", "Others"}}
	for _, m := range r.Trend {
		trend = append(trend, []interface{}{
			m.Month, m.TotalApplicants, m.Developers, m.Designers, m.DataAnalysts, m.ProductManagers, m.QAEngineers, m.Others,
		})
	}

	regions := [][]interface{}{{"Region", "Tier", "Count", "Percentage", "Avg Salary", "Avg Quality", "Top Position"}}
	for _, rs := range r.Regional {
		regions = append(regions, []interface{}{
			rs.Region, string(rs.Tier), rs.Count, rs.Percentage, rs.AvgSalaryExpectation, rs.AvgQualityScore, rs.TopPosition,
		})
	}

	quality := [][]interface{}{{"Check", "Threshold", "Actual", "Pass"}}
	if r.Quality != nil {
		for _, c := range r.Quality.Checks {
			quality = append(quality, []interface{}{c.Name, c.Threshold, c.Actual, c.Pass})
		}
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{SheetCandidates, candidates},
		{SheetChannels, channels},
		{SheetFunnel, funnel},
		{SheetTrend, trend},
		{SheetRegions, regions},
		{SheetQuality, quality},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("new sheet %s: %w", sheet.name, err)
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
