package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recruiting-lab/internal/cli/formatter"
	"recruiting-lab/internal/idhash"
	"recruiting-lab/internal/verification"
)

// errVerificationFailed is returned when a check fails or a replay diverges.
var errVerificationFailed = errors.New("verification failed")

func newVerifyCmd(app *App) *cobra.Command {
	var passes int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check dataset invariants and replay determinism",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passes < 0 {
				return fmt.Errorf("--passes must be >= 0, got %d", passes)
			}
			s, err := app.openSession(cmd.Context())
			if err != nil {
				return err
			}
			for i := 0; i < passes; i++ {
				if s, err = app.manager.Refresh(cmd.Context(), s.ID()); err != nil {
					return err
				}
			}

			checks := verification.CheckDataset(s.Dataset())
			replay, err := app.manager.Verify(cmd.Context(), s.ID())
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(renderChecks(checks))
			b.WriteString("\n")
			b.WriteString(renderReplay(replay))
			if err := writeString(cmd.OutOrStdout(), b.String()); err != nil {
				return err
			}
			if !checks.AllPass || !replay.Match {
				return errVerificationFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&passes, "passes", 0, "Refresh the session this many times before verifying")
	return cmd
}

func renderChecks(res *verification.CheckResult) string {
	rows := make([][]string, 0, len(res.Checks))
	for _, c := range res.Checks {
		result := "PASS"
		if !c.Pass {
			result = "FAIL"
		}
		rows = append(rows, []string{c.Name, c.Threshold, c.Actual, result})
	}

	var b strings.Builder
	b.WriteString(formatter.RenderTable([]string{"Check", "Threshold", "Actual", "Result"}, rows))
	for _, e := range res.Errors {
		b.WriteString("  " + e + "\n")
	}
	return b.String()
}

func renderReplay(res *verification.VerificationResult) string {
	var b strings.Builder
	status := "match"
	if !res.Match {
		status = fmt.Sprintf("%d divergences", len(res.Divergences))
	}
	fmt.Fprintf(&b, "Replay: seed %d · pass %d · %s\n", res.Seed, res.Pass, status)
	fmt.Fprintf(&b, "Fingerprint: %s\n", idhash.Short(res.Fingerprint))
	for _, d := range res.Divergences {
		fmt.Fprintf(&b, "  %s: stored %v, replayed %v\n", d.Field, d.Expected, d.Actual)
	}
	return b.String()
}
