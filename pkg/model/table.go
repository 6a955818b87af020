// pkg/model/table.go
package model

import "strings"

// Table is an in-memory tabular dataset: an ordered header plus rows of
// cells. Row count and row order are preserved through cleaning; the
// table is never filtered, merged, or reordered.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// NewTable creates a table with the given header and no rows.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([][]Cell, 0),
	}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a column by name (case-insensitive),
// or -1 if the column is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}

// AppendRow adds a row, padding or truncating it to the header width so
// every row stays rectangular. Missing trailing cells become null.
func (t *Table) AppendRow(row []Cell) {
	width := len(t.Columns)
	for len(row) < width {
		row = append(row, Null())
	}
	if len(row) > width {
		row = row[:width]
	}
	t.Rows = append(t.Rows, row)
}
