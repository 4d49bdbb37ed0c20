package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/idelchi/drivestat/internal/analyzer"
	"github.com/idelchi/drivestat/internal/config"
	"github.com/idelchi/drivestat/internal/logging"
	"github.com/idelchi/drivestat/internal/volume"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// dependencies bundles everything a command needs to run.
type dependencies struct {
	cfg      *config.Config
	log      zerolog.Logger
	analyzer *analyzer.Analyzer
	progress *progressPrinter
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		configPath string
		output     string
		topN       int
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "drivestat [volume...]",
		Short: "Analyze where disk space is consumed on local volumes.",
		Long: heredoc.Doc(`
			drivestat inspects local fixed volumes and reports where space goes:
			free/used capacity, the largest directories near the volume root, the
			size distribution by file extension, the largest individual files, and
			large files that are recently modified or stale.

			Without arguments every fixed local volume is analyzed in turn. Volume
			identifiers are mount-point paths (or drive roots such as C:/ on
			Windows). A volume is scanned at most once per run; repeated queries
			reuse the cached scan.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(configPath, output, topN, logLevel)
			if err != nil {
				return err
			}

			return analyzeVolumes(cmd.Context(), deps, args)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().IntVarP(&topN, "top", "t", 0, "Number of top entries per section")
	root.Flags().StringVarP(&output, "output", "o", "", "Output format: table or json")

	shell := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive analysis shell.",
		Long: heredoc.Doc(`
			The shell accepts one command per line and keeps the scan cache warm
			across commands, so repeated queries against the same volume never
			re-walk the filesystem. Type 'help' inside the shell for the command
			list.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := setup(configPath, "", topN, logLevel)
			if err != nil {
				return err
			}

			return runShell(cmd.Context(), deps)
		},
	}

	root.AddCommand(shell)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return root.ExecuteContext(ctx)
}

// setup loads configuration, applies flag overrides and wires the
// engine with its platform volume provider.
func setup(configPath, output string, topN int, logLevel string) (*dependencies, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if output != "" {
		cfg.Output = output
	}

	if topN > 0 {
		cfg.Analysis.TopN = topN
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}

	log := logging.New(cfg.Logging.Level)

	progress := newProgressPrinter(cfg.Output)

	eng := analyzer.New(
		volume.NewProvider(),
		analyzer.Options{
			TopN:       cfg.Analysis.TopN,
			RecentDays: cfg.Analysis.RecentDays,
			StaleDays:  cfg.Analysis.StaleDays,
		},
		analyzer.WithLogger(log),
		analyzer.WithProgress(progress.hook(), 0),
	)

	return &dependencies{
		cfg:      cfg,
		log:      log,
		analyzer: eng,
		progress: progress,
	}, nil
}
