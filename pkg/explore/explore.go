// pkg/explore/explore.go

// Package explore surveys a raw table for data-quality issues before
// cleaning: missing values, empty strings, non-ASCII text, and the
// parseable range of the designated date columns.
package explore

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/civicdata/case-ingress/pkg/cleaner"
	"github.com/civicdata/case-ingress/pkg/model"
)

// ColumnQuality summarizes one column of a raw table.
type ColumnQuality struct {
	Column      string
	Rows        int
	Nulls       int
	Empties     int
	NonASCII    int // values containing at least one character outside printable ASCII
	DateColumn  bool
	Parseable   int // date columns only
	EarliestRaw time.Time
	LatestRaw   time.Time
}

// NullPercent returns the missing share of rows as a percentage.
func (q ColumnQuality) NullPercent() float64 {
	if q.Rows == 0 {
		return 0
	}
	return float64(q.Nulls) / float64(q.Rows) * 100
}

// QualityReport holds per-column quality findings for one table.
type QualityReport struct {
	Table   string
	Rows    int
	Columns []ColumnQuality
}

// Auditor inspects raw tables column by column.
type Auditor struct {
	logger *zap.Logger
}

// NewAuditor creates a new auditor.
func NewAuditor(logger *zap.Logger) (*Auditor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Auditor{logger: logger}, nil
}

// Audit surveys every column of the table. The table is not modified.
func (a *Auditor) Audit(table *model.Table, tableName string) *QualityReport {
	report := &QualityReport{
		Table:   tableName,
		Rows:    table.NumRows(),
		Columns: make([]ColumnQuality, 0, len(table.Columns)),
	}

	for idx, col := range table.Columns {
		quality := ColumnQuality{
			Column:     col,
			Rows:       table.NumRows(),
			DateColumn: isDateColumn(table, idx),
		}

		for _, row := range table.Rows {
			cell := row[idx]
			if cell.IsNull() {
				quality.Nulls++
				continue
			}
			if cell.Value == "" {
				quality.Empties++
				continue
			}
			if hasNonASCII(cell.Value) {
				quality.NonASCII++
			}
			if quality.DateColumn {
				t, err := cleaner.ParseDate(cell.Value)
				if err != nil {
					continue
				}
				quality.Parseable++
				if quality.EarliestRaw.IsZero() || t.Before(quality.EarliestRaw) {
					quality.EarliestRaw = t
				}
				if t.After(quality.LatestRaw) {
					quality.LatestRaw = t
				}
			}
		}

		report.Columns = append(report.Columns, quality)
	}

	a.logger.Info("Audited table",
		zap.String("table", tableName),
		zap.Int("rows", report.Rows),
		zap.Int("columns", len(report.Columns)))

	return report
}

// isDateColumn reports whether the column at idx is one of the designated
// date columns.
func isDateColumn(table *model.Table, idx int) bool {
	for _, col := range cleaner.DateColumns {
		if table.ColumnIndex(col) == idx {
			return true
		}
	}
	return false
}

// hasNonASCII reports whether the value contains any character outside
// the printable ASCII range (tab, newline, and carriage return count as
// outside: they would corrupt row-based serialization).
func hasNonASCII(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return true
		}
	}
	return false
}
