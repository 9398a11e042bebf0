package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"recruiting-lab/internal/cli/formatter"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/query"
)

func newCandidatesCmd(app *App) *cobra.Command {
	var (
		positions, statuses, locations []string
		from, to, search, sortKey      string
		minScore, maxScore             int
		desc                           bool
		page, pageSize                 int
	)

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List, filter, search and sort generated candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := query.Criteria{
				Positions:  positions,
				Locations:  locations,
				SearchTerm: search,
			}
			for _, s := range statuses {
				st := domain.Status(s)
				if !st.IsValid() {
					return fmt.Errorf("unknown status %q", s)
				}
				criteria.Statuses = append(criteria.Statuses, st)
			}
			if from != "" || to != "" {
				dr, err := parseDateRange(from, to)
				if err != nil {
					return err
				}
				criteria.DateRange = dr
			}
			if cmd.Flags().Changed("min-score") || cmd.Flags().Changed("max-score") {
				criteria.ScoreRange = &query.ScoreRange{Min: minScore, Max: maxScore}
			}

			key, err := query.ParseSortKey(sortKey)
			if err != nil {
				return err
			}

			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			view := s.Filter(criteria)
			app.metrics.RecordFilter(!criteria.Empty(), len(view))

			size := pageSize
			if size <= 0 {
				size = app.cfg.PageSize
			}
			p, err := query.SortAndPaginate(view, key, !desc, size, page-1)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(p.Items))
			for _, c := range p.Items {
				rows = append(rows, []string{
					c.ID, c.Name, c.Position, string(c.Status), string(c.Experience), c.Location,
					strconv.Itoa(c.ResumeScore), strconv.FormatFloat(c.Rating, 'f', 1, 64), formatter.Date(c.AppliedDate),
				})
			}

			out := cmd.OutOrStdout()
			if len(view) == 0 {
				return writeString(out, "No candidates match.\n")
			}
			m := s.Metrics(view)
			return writeString(out, formatter.RenderTable(
				[]string{"ID", "Name", "Position", "Status", "Experience", "Location", "Score", "Rating", "Applied"}, rows,
			)+fmt.Sprintf("\nPage %d/%d · %d candidates · hired %d (%s) · avg score %.1f\n",
				p.PageIndex+1, p.PageCount, p.Total, m.TotalHired, formatter.Pct(m.OverallConversionRate), m.AverageScore))
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&positions, "position", nil, "Restrict to positions (repeatable)")
	f.StringSliceVar(&statuses, "status", nil, "Restrict to pipeline statuses (repeatable)")
	f.StringSliceVar(&locations, "location", nil, "Restrict to locations (repeatable)")
	f.StringVar(&from, "from", "", "Earliest applied date, YYYY-MM-DD")
	f.StringVar(&to, "to", "", "Latest applied date, YYYY-MM-DD")
	f.IntVar(&minScore, "min-score", domain.MinResumeScore, "Minimum resume score")
	f.IntVar(&maxScore, "max-score", domain.MaxResumeScore, "Maximum resume score")
	f.StringVar(&search, "search", "", "Case-insensitive match on name, position or skills")
	f.StringVar(&sortKey, "sort", string(query.SortByID), "Sort key: id, name, applied_date, resume_score, rating")
	f.BoolVar(&desc, "desc", false, "Sort descending")
	f.IntVar(&page, "page", 1, "Page number, 1-based; clamped to the last page")
	f.IntVar(&pageSize, "page-size", 0, "Rows per page (default from config)")

	return cmd
}

// parseDateRange fills a missing bound with an open-ended date.
func parseDateRange(from, to string) (*query.DateRange, error) {
	dr := &query.DateRange{
		Start: time.Time{},
		End:   time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		dr.Start = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
		dr.End = t
	}
	return dr, nil
}
