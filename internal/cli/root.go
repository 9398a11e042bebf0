// Package cli implements the recruitlab command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"recruiting-lab/internal/config"
	"recruiting-lab/internal/observability"
	"recruiting-lab/internal/session"
	"recruiting-lab/internal/storage/memory"
)

// App holds the dependencies shared by all commands. Zero fields are filled
// with production defaults when the root command runs.
type App struct {
	// Now is the reference clock; nil means time.Now.
	Now func() time.Time
	// Registry receives application metrics; nil means a fresh registry.
	Registry *prometheus.Registry

	cfg     config.Config
	logger  *logrus.Logger
	metrics *observability.Metrics
	manager *session.Manager
}

type rootFlags struct {
	configPath  string
	seed        int64
	logLevel    string
	dumpMetrics bool
}

// NewRootCmd creates the top-level "recruitlab" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "recruitlab",
		Short:         "Synthetic recruiting dataset generator and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !flags.dumpMetrics {
				return nil
			}
			return observability.WriteText(cmd.ErrOrStderr(), app.Registry)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	pf.Int64Var(&flags.seed, "seed", 0, "Random seed (overrides config; 0 derives one from the clock)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.dumpMetrics, "metrics", false, "Print Prometheus metrics to stderr after the command")

	root.AddCommand(
		newCandidatesCmd(app),
		newFunnelCmd(app),
		newChannelsCmd(app),
		newSummaryCmd(app),
		newReportCmd(app),
		newVerifyCmd(app),
	)

	return root
}

func (a *App) init(cmd *cobra.Command, flags rootFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.seed
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if a.Now == nil {
		a.Now = time.Now
	}
	if a.Registry == nil {
		a.Registry = prometheus.NewRegistry()
	}
	a.cfg = cfg
	a.logger = logger
	a.metrics = observability.NewMetrics(a.Registry, "")
	a.manager = session.NewManager(cfg, memory.NewSessionStore(), logger, a.metrics, session.WithClock(a.Now))
	return nil
}

// openSession creates a session with its first generation pass.
func (a *App) openSession(ctx context.Context) (*session.Session, error) {
	if a.manager == nil {
		return nil, fmt.Errorf("app not initialised")
	}
	return a.manager.Create(ctx)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
