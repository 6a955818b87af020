// pkg/pipeline/runner.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/civicdata/case-ingress/pkg/cleaner"
	"github.com/civicdata/case-ingress/pkg/csvio"
)

// Runner executes clean jobs sequentially and independently: a failure on
// one table never prevents the other from being processed. The jobs share
// only the stateless normalizer.
type Runner struct {
	cleaner          *cleaner.DataCleaner
	logger           *zap.Logger
	writeDiagnostics bool
}

// NewRunner creates a new runner
func NewRunner(dataCleaner *cleaner.DataCleaner, logger *zap.Logger) (*Runner, error) {
	if dataCleaner == nil {
		return nil, errors.New("data cleaner cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Runner{
		cleaner:          dataCleaner,
		logger:           logger,
		writeDiagnostics: true,
	}, nil
}

// WithDiagnostics toggles the flat-file audit log and returns the runner
func (r *Runner) WithDiagnostics(enabled bool) *Runner {
	r.writeDiagnostics = enabled
	return r
}

// EnsureOutputDirs creates the output directories for all jobs up front.
// A failure here prevents the run from starting and is the only condition
// the CLI exits non-zero for.
func EnsureOutputDirs(jobs []CleanJob) error {
	for _, job := range jobs {
		dir := filepath.Dir(job.OutputPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// Run executes every job unconditionally and returns the summary. The
// summary always contains one result per job, including failures.
func (r *Runner) Run(ctx context.Context, jobs []CleanJob) *RunSummary {
	summary := NewRunSummary()

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			result := NewJobResult(job)
			result.AddError(NewErrorRecord(err, ErrorCategorySystemLevel).WithTable(job.Name))
			result.Complete(false)
			summary.AddJobResult(*result)
			continue
		}
		summary.AddJobResult(*r.runJob(job))
	}

	summary.Complete()
	return summary
}

// runJob cleans and persists one table. Cell-level failures are already
// absorbed by the cleaner; only file-level failures fail the job.
func (r *Runner) runJob(job CleanJob) *JobResult {
	result := NewJobResult(job)
	logger := r.logger.With(zap.String("table", job.Name), zap.String("jobID", job.ID))

	logger.Info("Cleaning table", zap.String("input", job.InputPath))

	table, err := csvio.ReadTable(job.InputPath)
	if err != nil {
		logger.Error("Failed to load source table", zap.Error(err))
		result.AddError(NewErrorRecord(err, ErrorCategoryTableLevel).
			WithTable(job.Name).
			WithPath(job.InputPath))
		result.Complete(false)
		return result
	}
	result.RowsRead = table.NumRows()
	logger.Info("Loaded source table", zap.Int("rows", result.RowsRead))

	result.Stats, result.Diagnostics = r.cleaner.CleanTable(table, job.Name)

	if err := csvio.WriteTable(job.OutputPath, table); err != nil {
		logger.Error("Failed to persist cleaned table", zap.Error(err))
		result.AddError(NewErrorRecord(err, ErrorCategoryTableLevel).
			WithTable(job.Name).
			WithPath(job.OutputPath))
		result.Complete(false)
		return result
	}
	result.RowsWritten = table.NumRows()

	if r.writeDiagnostics {
		if err := csvio.WriteDiagnostics(job.DiagnosticsPath, result.Diagnostics); err != nil {
			logger.Error("Failed to persist diagnostics", zap.Error(err))
			result.AddError(NewErrorRecord(err, ErrorCategoryTableLevel).
				WithTable(job.Name).
				WithPath(job.DiagnosticsPath))
			result.Complete(false)
			return result
		}
	}

	logger.Info("Cleaned table persisted",
		zap.String("output", job.OutputPath),
		zap.Int("rows", result.RowsWritten),
		zap.Int("diagnostics", len(result.Diagnostics)))

	result.Complete(true)
	return result
}
