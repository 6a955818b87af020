// pkg/pipeline/job.go
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/civicdata/case-ingress/pkg/config"
	"github.com/civicdata/case-ingress/pkg/model"
)

// CleanJob represents the clean-and-persist operation for one source table
type CleanJob struct {
	ID              string    // Unique job identifier
	Name            string    // Source table name ("current", "historical")
	InputPath       string    // Raw CSV location
	OutputPath      string    // Cleaned CSV destination
	DiagnosticsPath string    // Flat-file audit log destination
	CreatedAt       time.Time // Job creation timestamp
}

// NewCleanJob creates a clean job for one configured source
func NewCleanJob(src config.Source) CleanJob {
	return CleanJob{
		ID:              uuid.New().String(),
		Name:            src.Name,
		InputPath:       src.Input,
		OutputPath:      src.Output,
		DiagnosticsPath: src.DiagnosticsPath(),
		CreatedAt:       time.Now(),
	}
}

// JobResult represents the result of one table's clean job
type JobResult struct {
	JobID       string
	Name        string
	Success     bool
	RowsRead    int
	RowsWritten int
	Stats       []model.ColumnStats
	Diagnostics []model.CellDiagnostic
	Errors      []ErrorRecord
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// NewJobResult initializes a result for a job
func NewJobResult(job CleanJob) *JobResult {
	return &JobResult{
		JobID:     job.ID,
		Name:      job.Name,
		StartTime: time.Now(),
		Errors:    make([]ErrorRecord, 0),
	}
}

// Complete marks the job as complete and calculates duration
func (r *JobResult) Complete(success bool) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Success = success
}

// AddError adds an error to the result and marks the job failed
func (r *JobResult) AddError(err ErrorRecord) {
	r.Errors = append(r.Errors, err)
	r.Success = false
}

// HasErrors checks if any errors occurred
func (r *JobResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// RunSummary represents the final state of a full cleaning run
type RunSummary struct {
	Jobs      []JobResult
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// NewRunSummary initializes a new run summary
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Jobs:      make([]JobResult, 0),
		StartTime: time.Now(),
	}
}

// AddJobResult incorporates one job result into the summary
func (s *RunSummary) AddJobResult(result JobResult) {
	s.Jobs = append(s.Jobs, result)
}

// Complete marks the run as complete and calculates duration
func (s *RunSummary) Complete() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// SucceededCount returns the number of successful jobs
func (s *RunSummary) SucceededCount() int {
	count := 0
	for _, job := range s.Jobs {
		if job.Success {
			count++
		}
	}
	return count
}

// FailedCount returns the number of failed jobs
func (s *RunSummary) FailedCount() int {
	return len(s.Jobs) - s.SucceededCount()
}
