// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/civicdata/case-ingress/pkg/model"
)

// Designated columns subject to normalization. Columns absent from a
// source table are skipped; every other column passes through unchanged.
var (
	TextColumns = []string{"OBJECTDESC", "TITLE", "CASECLOSUREREASONDESCRIPTION"}
	DateColumns = []string{"CREATIONDATE", "CLOSEDDATETIME"}
)

// DataCleaner applies field normalization column-wise over a table
type DataCleaner struct {
	logger *zap.Logger
}

// NewDataCleaner creates a new DataCleaner instance
func NewDataCleaner(logger *zap.Logger) (*DataCleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &DataCleaner{logger: logger}, nil
}

// CleanTable normalizes the designated text and date columns of the table
// in place. Row count and row order are preserved exactly. It returns the
// per-column summary stats and one diagnostic per unparseable date cell.
// A bad cell never fails the table: the cell becomes "no value", the
// diagnostic is recorded, and processing continues.
func (c *DataCleaner) CleanTable(table *model.Table, tableName string) ([]model.ColumnStats, []model.CellDiagnostic) {
	stats := make([]model.ColumnStats, 0, len(TextColumns)+len(DateColumns))
	var diagnostics []model.CellDiagnostic

	for _, col := range TextColumns {
		idx := table.ColumnIndex(col)
		if idx < 0 {
			c.logger.Debug("Text column absent, skipping",
				zap.String("table", tableName),
				zap.String("column", col))
			continue
		}
		stats = append(stats, c.cleanTextColumn(table, idx, col))
	}

	for _, col := range DateColumns {
		idx := table.ColumnIndex(col)
		if idx < 0 {
			c.logger.Debug("Date column absent, skipping",
				zap.String("table", tableName),
				zap.String("column", col))
			continue
		}
		colStats, colDiags := c.cleanDateColumn(table, idx, col, tableName)
		stats = append(stats, colStats)
		diagnostics = append(diagnostics, colDiags...)
	}

	return stats, diagnostics
}

// cleanTextColumn replaces every cell in the column with its normalized
// form. Null and empty cells pass through as-is.
func (c *DataCleaner) cleanTextColumn(table *model.Table, idx int, col string) model.ColumnStats {
	stats := model.ColumnStats{
		Column: col,
		Kind:   model.ColumnKindText,
		Rows:   table.NumRows(),
	}

	for i, row := range table.Rows {
		cleaned := NormalizeTextCell(row[idx])
		table.Rows[i][idx] = cleaned
		if !cleaned.IsEmpty() {
			stats.Populated++
		}
	}

	return stats
}

// cleanDateColumn parses every cell in the column into the canonical
// date-time form. Unparseable values degrade to "no value" with a logged
// diagnostic; null and empty cells become "no value" silently.
func (c *DataCleaner) cleanDateColumn(table *model.Table, idx int, col, tableName string) (model.ColumnStats, []model.CellDiagnostic) {
	stats := model.ColumnStats{
		Column: col,
		Kind:   model.ColumnKindDate,
		Rows:   table.NumRows(),
	}
	var diagnostics []model.CellDiagnostic

	for i, row := range table.Rows {
		cell := row[idx]
		if cell.IsEmpty() {
			table.Rows[i][idx] = model.Null()
			continue
		}

		parsed, err := ParseDate(cell.Value)
		if err != nil {
			c.logger.Warn("Could not parse date",
				zap.String("table", tableName),
				zap.String("column", col),
				zap.String("value", cell.Value),
				zap.Error(err))
			diagnostics = append(diagnostics, model.CellDiagnostic{
				Table:         tableName,
				Column:        col,
				RowIdentifier: strconv.Itoa(i + 1),
				OriginalValue: cell.Value,
				Operation:     "date_parse",
				Reason:        err.Error(),
				OccurredAt:    time.Now(),
			})
			table.Rows[i][idx] = model.Null()
			continue
		}

		table.Rows[i][idx] = model.String(parsed.Format(DateLayout))
		stats.Populated++
	}

	return stats, diagnostics
}
