package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"recruiting-lab/internal/cli/formatter"
	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/metrics"
)

func newFunnelCmd(app *App) *cobra.Command {
	var fromCandidates bool

	cmd := &cobra.Command{
		Use:   "funnel",
		Short: "Show funnel stages with conversion and drop-off",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			ds := s.Dataset()

			funnel := ds.Funnel
			if fromCandidates {
				funnel = generation.FunnelFromCandidates(ds.Candidates)
			}
			return writeString(cmd.OutOrStdout(), renderFunnel(funnel))
		},
	}

	cmd.Flags().BoolVar(&fromCandidates, "from-candidates", false, "Derive stage counts from candidate statuses")
	return cmd
}

func renderFunnel(funnel []domain.FunnelStage) string {
	stages := domain.StageCounts(funnel)
	conversions := metrics.ComputeConversions(stages)
	dropoff := metrics.ComputeDropoff(stages)

	maxCount := 0
	if len(funnel) > 0 {
		maxCount = funnel[0].Count
	}

	rows := make([][]string, 0, len(funnel))
	for i, st := range funnel {
		conv := "-"
		if i > 0 {
			conv = formatter.Pct(conversions[i-1].Rate)
		}
		rows = append(rows, []string{
			st.Name,
			strconv.Itoa(st.Count),
			formatter.Pct(st.Percentage),
			conv,
			strconv.Itoa(dropoff[i].Lost),
			formatter.Pct(dropoff[i].CumulativeLossPct),
			formatter.Bar(st.Count, maxCount, 30),
		})
	}

	return formatter.RenderTable(
		[]string{"Stage", "Count", "Of Total", "Conversion", "Lost", "Cumulative Loss", ""}, rows,
	) + fmt.Sprintf("\nOverall conversion: %s\n", formatter.Pct(metrics.OverallConversion(stages)))
}
