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

func newChannelsCmd(app *App) *cobra.Command {
	var scorecard bool

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Show channel performance with CPA and ROI",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			ds := s.Dataset()
			table := metrics.ChannelTable(ds.Channels, s.PerHireValue())

			rows := make([][]string, 0, len(table))
			for _, c := range table {
				rows = append(rows, []string{
					string(c.Name),
					strconv.Itoa(c.Applicants),
					strconv.Itoa(c.Hired),
					strconv.FormatFloat(c.ConversionRate, 'f', 2, 64) + "%",
					formatter.Won(c.Cost),
					formatter.Won(c.CPA),
					formatter.Pct(c.ROI),
				})
			}

			var b strings.Builder
			b.WriteString(formatter.RenderTable(
				[]string{"Channel", "Applicants", "Hired", "Conversion", "Cost", "CPA", "ROI"}, rows))
			b.WriteString("\n")
			b.WriteString(renderInsights(metrics.ChannelInsights(ds.Channels)))

			if scorecard {
				b.WriteString("\n")
				b.WriteString(renderScorecard(metrics.ChannelScorecard(ds.Channels)))
			}
			return writeString(cmd.OutOrStdout(), b.String())
		},
	}

	cmd.Flags().BoolVar(&scorecard, "scorecard", false, "Also show normalised 0-100 channel scores")
	return cmd
}

func renderInsights(ins metrics.ChannelInsight) string {
	var b strings.Builder
	line := func(label string, ch *domain.Channel) {
		if ch == nil {
			return
		}
		b.WriteString(fmt.Sprintf("%s: %s (%.2f%%)\n", label, ch.Name, ch.ConversionRate))
	}
	line("Best conversion", ins.Best)
	line("Worst conversion", ins.Worst)
	line("Best free channel", ins.BestFree)
	return b.String()
}

func renderScorecard(cards []metrics.Scorecard) string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			string(c.Channel),
			strconv.FormatFloat(c.Applicants, 'f', 1, 64),
			strconv.FormatFloat(c.Conversion, 'f', 1, 64),
			strconv.FormatFloat(c.Quality, 'f', 1, 64),
		})
	}
	return formatter.RenderTable([]string{"Channel", "Volume", "Conversion", "Quality"}, rows)
}
