// pkg/model/cleaning.go
package model

import "time"

// CellDiagnostic records a single per-cell normalization event, typically
// a date value that could not be parsed. Diagnostics are collected per job
// and persisted to a flat audit file next to the cleaned output.
type CellDiagnostic struct {
	Table         string    // Source table name ("current", "historical")
	Column        string    // Column the cell belongs to
	RowIdentifier string    // Identifies the row within the table
	OriginalValue string    // Raw value before normalization
	Operation     string    // Kind of normalization attempted (e.g. "date_parse")
	Reason        string    // Why the value was replaced with "no value"
	OccurredAt    time.Time // When the diagnostic was recorded
}

// ColumnKind distinguishes designated text columns from date columns in
// summary reporting.
type ColumnKind string

const (
	ColumnKindText ColumnKind = "text"
	ColumnKindDate ColumnKind = "date"
)

// ColumnStats summarizes one designated column after cleaning: for date
// columns Populated counts successfully parsed cells, for text columns it
// counts non-null, non-empty cells.
type ColumnStats struct {
	Column    string
	Kind      ColumnKind
	Rows      int
	Populated int
}

// Percent returns the populated share of rows as a percentage.
func (s ColumnStats) Percent() float64 {
	if s.Rows == 0 {
		return 0
	}
	return float64(s.Populated) / float64(s.Rows) * 100
}
