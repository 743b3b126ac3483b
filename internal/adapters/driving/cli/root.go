// Package cli implements the doctrace command line.
//
// Running doctrace with no arguments loads the planning documents once and
// writes both the consistency report and the traceability matrix.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/doctrace/internal/adapters/driven/config/file"
	fsloader "github.com/custodia-labs/doctrace/internal/adapters/driven/loader/filesystem"
	"github.com/custodia-labs/doctrace/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/doctrace/internal/adapters/driven/render/snapshot"
	fswriter "github.com/custodia-labs/doctrace/internal/adapters/driven/writer/filesystem"
	"github.com/custodia-labs/doctrace/internal/adapters/driving/console"
	"github.com/custodia-labs/doctrace/internal/core/domain"
	"github.com/custodia-labs/doctrace/internal/core/ports/driving"
	"github.com/custodia-labs/doctrace/internal/core/services"
	"github.com/custodia-labs/doctrace/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Global flags.
var (
	baseDir        string
	configPath     string
	outputDir      string
	snapshotFormat string
	verbose        bool
	noColor        bool
)

// newReportService builds the service for a resolved configuration.
// Tests replace it to run against in-memory documents.
var newReportService = defaultReportService

var rootCmd = &cobra.Command{
	Use:   "doctrace",
	Short: "Cross-reference planning documents",
	Long: `doctrace cross-references the planning documents (SRS, SDD, SDP,
TestPlan, API) and reports drift between them.

Without a subcommand it writes both the consistency report and the
traceability matrix into the output directory (docs/traceability).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runAll,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseDir, "base-dir", ".", "Repository root holding the docs directory")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default <base-dir>/doctrace.toml)")
	flags.StringVarP(&outputDir, "output-dir", "o", "", "Output directory, relative to base dir (default docs/traceability)")
	flags.StringVar(&snapshotFormat, "snapshot-format", "", "Snapshot format: json or yaml (default json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print pipeline diagnostics to stderr")
	flags.BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// Root returns the root command, for ExecuteContext.
func Root() *cobra.Command {
	return rootCmd
}

func runAll(cmd *cobra.Command, _ []string) error {
	svc, err := reportService(cmd)
	if err != nil {
		return err
	}

	results, err := svc.RunAll(cmd.Context())
	printer(cmd).Print(results)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}
	return nil
}

// resolveConfig merges defaults, the config file and flags, in that order.
func resolveConfig(cmd *cobra.Command) (domain.Config, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return domain.Config{}, fmt.Errorf("resolve base dir: %w", err)
	}
	info, err := os.Stat(absBase)
	if err != nil {
		return domain.Config{}, fmt.Errorf("stat base dir: %w", err)
	}
	if !info.IsDir() {
		return domain.Config{}, fmt.Errorf("%w: not a directory: %s", domain.ErrInvalidInput, absBase)
	}

	path := configPath
	if path == "" {
		path = filepath.Join(absBase, file.DefaultFileName)
	}
	store, err := file.NewConfigStore(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config file: %s", store.Path())

	cfg, err := services.ApplyConfig(domain.DefaultConfig(absBase), store)
	if err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg = cfg.WithOutputDir(outputDir)
	}
	if flags.Changed("snapshot-format") {
		format, err := domain.ParseSnapshotFormat(snapshotFormat)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = cfg.WithSnapshotFormat(format)
	}

	return cfg, nil
}

func reportService(cmd *cobra.Command) (driving.ReportService, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	svc, err := newReportService(cfg)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.New("report service not configured")
	}
	return svc, nil
}

func defaultReportService(cfg domain.Config) (driving.ReportService, error) {
	snap, err := snapshot.New(cfg.SnapshotFormat)
	if err != nil {
		return nil, err
	}
	return services.NewReportService(cfg, fsloader.New(), markdown.New(), snap, fswriter.New()), nil
}

func printer(cmd *cobra.Command) *console.Printer {
	out := cmd.OutOrStdout()
	return console.NewPrinter(out, !noColor && isTerminal(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
