package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/civicdata/case-ingress/pkg/cleaner"
	"github.com/civicdata/case-ingress/pkg/config"
	"github.com/civicdata/case-ingress/pkg/csvio"
	"github.com/civicdata/case-ingress/pkg/explore"
	"github.com/civicdata/case-ingress/pkg/pipeline"
)

// version is set at build time via -ldflags.
var version = "dev"

var sourcesFlag string

var rootCmd = &cobra.Command{
	Use:   "case-ingress",
	Short: "Cleans the municipal call-center case-log exports",
	Long: "case-ingress normalizes the text and date columns of the current and\n" +
		"historical call-center CSV exports and writes the cleaned datasets\n" +
		"consumed by the downstream reporting scripts.",
	RunE:         runClean,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Surveys the raw tables for data-quality issues",
	RunE:  runAudit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourcesFlag, "config", "",
		"YAML sources file overriding the two fixed tables")
	rootCmd.AddCommand(auditCmd)
	rootCmd.Version = version
}

// loadConfig resolves configuration from the environment and the optional
// --config sources file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if sourcesFlag != "" {
		sources, err := config.LoadSourcesFile(sourcesFlag)
		if err != nil {
			return nil, err
		}
		cfg.Sources = sources
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the operator-visible logger from the configured level
// and format.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// runClean processes both fixed tables unconditionally. Per-job failures
// are surfaced in the summary but do not affect the exit code; only a
// condition that prevents the run from starting returns an error.
func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dataCleaner, err := cleaner.NewDataCleaner(logger)
	if err != nil {
		return err
	}

	jobs := make([]pipeline.CleanJob, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		jobs = append(jobs, pipeline.NewCleanJob(src))
	}

	if err := pipeline.EnsureOutputDirs(jobs); err != nil {
		return err
	}

	runner, err := pipeline.NewRunner(dataCleaner, logger)
	if err != nil {
		return err
	}
	runner = runner.WithDiagnostics(cfg.WriteDiagnostics)

	summary := runner.Run(cmd.Context(), jobs)
	fmt.Fprint(cmd.OutOrStdout(), pipeline.RenderSummary(summary))

	return nil
}

// runAudit surveys each raw table; a missing table is reported and the
// next one is still audited.
func runAudit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	auditor, err := explore.NewAuditor(logger)
	if err != nil {
		return err
	}

	for _, src := range cfg.Sources {
		table, err := csvio.ReadTable(src.Input)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Table %q: cannot audit: %v\n", src.Name, err)
			continue
		}
		report := auditor.Audit(table, src.Name)
		fmt.Fprint(cmd.OutOrStdout(), explore.RenderReport(report))
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}
