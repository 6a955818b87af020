// pkg/csvio/csvio.go
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/civicdata/case-ingress/pkg/model"
)

// ErrEmptyFile is returned when a source file has no header row.
var ErrEmptyFile = errors.New("file has no header row")

// ReadTable loads a comma-separated file with a header row, preserving
// every cell as an uninterpreted string. No type inference happens here:
// leading zeros, stray punctuation, and date strings all arrive exactly
// as written. An empty field becomes a null cell; ragged rows are padded
// with null cells to the header width.
func ReadTable(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read %s: %w", path, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	table := model.NewTable(header)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		row := make([]model.Cell, 0, len(record))
		for _, field := range record {
			if field == "" {
				row = append(row, model.Null())
			} else {
				row = append(row, model.String(field))
			}
		}
		table.AppendRow(row)
	}

	return table, nil
}

// WriteTable persists a table to path as a comma-separated file with a
// header row, preserving column and row order. Null cells serialize as
// empty fields. The parent directory is created if absent and any
// pre-existing file at the path is overwritten.
func WriteTable(path string, table *model.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && row[i].Valid {
				record[i] = row[i].Value
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// diagnosticsHeader is the fixed header of the flat-file audit log.
var diagnosticsHeader = []string{
	"table", "column", "row", "original_value", "operation", "reason", "occurred_at",
}

// WriteDiagnostics persists per-cell diagnostics as a comma-separated
// audit file next to the cleaned output.
func WriteDiagnostics(path string, diagnostics []model.CellDiagnostic) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create diagnostics file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(diagnosticsHeader); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	for _, d := range diagnostics {
		record := []string{
			d.Table,
			d.Column,
			d.RowIdentifier,
			d.OriginalValue,
			d.Operation,
			d.Reason,
			d.OccurredAt.Format("2006-01-02T15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write diagnostic to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
