package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"recruiting-lab/internal/reporting"
)

func newReportCmd(app *App) *cobra.Command {
	var outputDir, format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a full report as Markdown, CSV or Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "md" && format != "csv" && format != "xlsx" {
				return fmt.Errorf("unknown format %q (want md, csv or xlsx)", format)
			}

			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			r := reporting.Build(s.Dataset(), nil, s.PerHireValue(), s.Now())

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			var written []string
			switch format {
			case "md":
				path := filepath.Join(outputDir, "report.md")
				if err := os.WriteFile(path, []byte(reporting.RenderMarkdown(r)), 0o644); err != nil {
					return err
				}
				written = append(written, path)
			case "csv":
				files := reporting.CSVFiles(r)
				names := make([]string, 0, len(files))
				for name := range files {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					path := filepath.Join(outputDir, name)
					if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
						return err
					}
					written = append(written, path)
				}
			case "xlsx":
				path := filepath.Join(outputDir, "report.xlsx")
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := reporting.WriteXLSX(f, r); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				written = append(written, path)
			}

			app.metrics.RecordReport(format)
			app.logger.WithField("session_id", s.ID()).WithField("format", format).Info("report written")
			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for report files")
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv or xlsx")
	return cmd
}
