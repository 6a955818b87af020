// pkg/pipeline/error.go
package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCategory defines categories of errors during a cleaning run
type ErrorCategory int

const (
	// Error categories with increasing severity
	ErrorCategoryNone ErrorCategory = iota
	// ErrorCategoryCellLevel covers a single unparseable cell; always
	// recovered locally, never fails a job.
	ErrorCategoryCellLevel
	// ErrorCategoryColumnLevel covers a designated column absent from a
	// source table; the column is skipped, the job continues.
	ErrorCategoryColumnLevel
	// ErrorCategoryTableLevel covers a missing or unreadable source file,
	// or an unwritable output; fails that table's job only.
	ErrorCategoryTableLevel
	// ErrorCategorySystemLevel covers conditions that prevent the run
	// from starting at all, such as an uncreatable output directory.
	ErrorCategorySystemLevel
)

// String returns a string representation of the error category
func (ec ErrorCategory) String() string {
	switch ec {
	case ErrorCategoryNone:
		return "None"
	case ErrorCategoryCellLevel:
		return "CellLevel"
	case ErrorCategoryColumnLevel:
		return "ColumnLevel"
	case ErrorCategoryTableLevel:
		return "TableLevel"
	case ErrorCategorySystemLevel:
		return "SystemLevel"
	default:
		return fmt.Sprintf("Unknown(%d)", ec)
	}
}

// ErrorRecord represents a single error during a cleaning run
type ErrorRecord struct {
	Category    ErrorCategory
	TableName   string
	Path        string
	Error       error
	Message     string // Derived from Error but stored for serialization
	Timestamp   time.Time
	Recoverable bool
}

// NewErrorRecord creates a new error record with current timestamp
func NewErrorRecord(err error, category ErrorCategory) ErrorRecord {
	record := ErrorRecord{
		Category:    category,
		Error:       err,
		Timestamp:   time.Now(),
		Recoverable: category < ErrorCategoryTableLevel,
	}

	if err != nil {
		record.Message = err.Error()
	}

	return record
}

// WithTable adds table information to the error record
func (r ErrorRecord) WithTable(table string) ErrorRecord {
	r.TableName = table
	return r
}

// WithPath adds the file path the error relates to
func (r ErrorRecord) WithPath(path string) ErrorRecord {
	r.Path = path
	return r
}

// String returns a formatted error message
func (r ErrorRecord) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] ", r.Category))

	if r.TableName != "" {
		sb.WriteString(fmt.Sprintf("Table: %s ", r.TableName))
	}

	if r.Path != "" {
		sb.WriteString(fmt.Sprintf("Path: %s ", r.Path))
	}

	if r.Error != nil {
		sb.WriteString(fmt.Sprintf("Error: %s", r.Error.Error()))
	} else if r.Message != "" {
		sb.WriteString(fmt.Sprintf("Error: %s", r.Message))
	}

	return sb.String()
}
