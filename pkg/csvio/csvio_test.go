// pkg/csvio/csvio_test.go
package csvio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/civicdata/case-ingress/pkg/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	writeFile(t, path, "CASEID,TITLE,CLOSEDDATETIME\n001,\"Pothole, deep\",2021-01-02\n002,,\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}

	wantColumns := []string{"CASEID", "TITLE", "CLOSEDDATETIME"}
	if diff := cmp.Diff(wantColumns, table.Columns); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}

	wantRows := [][]model.Cell{
		{model.String("001"), model.String("Pothole, deep"), model.String("2021-01-02")},
		{model.String("002"), model.Null(), model.Null()},
	}
	if diff := cmp.Diff(wantRows, table.Rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestReadTablePadsRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.csv")
	writeFile(t, path, "A,B,C\n1\n1,2,3,4\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}

	wantRows := [][]model.Cell{
		{model.String("1"), model.Null(), model.Null()},
		{model.String("1"), model.String("2"), model.String("3")},
	}
	if diff := cmp.Diff(wantRows, table.Rows); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	if _, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("ReadTable should fail for a missing file")
	}
}

func TestReadTableEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	writeFile(t, path, "")

	if _, err := ReadTable(path); err == nil {
		t.Fatal("ReadTable should fail for a file without a header")
	}
}

func TestWriteTableRoundTrip(t *testing.T) {
	table := model.NewTable([]string{"CASEID", "TITLE", "CLOSEDDATETIME"})
	table.AppendRow([]model.Cell{model.String("001"), model.String("Water, main"), model.String("2021-01-02T00:00:00")})
	table.AppendRow([]model.Cell{model.String("002"), model.Null(), model.Null()})

	// The output directory does not exist yet; WriteTable creates it.
	path := filepath.Join(t.TempDir(), "out", "cleaned.csv")
	if err := WriteTable(path, table); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}

	got, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}
	if diff := cmp.Diff(table, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestWriteTableOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	writeFile(t, path, "OLD\nstale\nrows\nhere\n")

	table := model.NewTable([]string{"A"})
	table.AppendRow([]model.Cell{model.String("1")})
	if err := WriteTable(path, table); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}

	got, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}
	if got.NumRows() != 1 || got.Columns[0] != "A" {
		t.Errorf("stale content survived overwrite: %+v", got)
	}
}

func TestWriteDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit", "current_diagnostics.csv")
	diagnostics := []model.CellDiagnostic{
		{
			Table:         "current",
			Column:        "CLOSEDDATETIME",
			RowIdentifier: "3",
			OriginalValue: "bad-date",
			Operation:     "date_parse",
			Reason:        "cannot parse time from 'bad-date'",
			OccurredAt:    time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	if err := WriteDiagnostics(path, diagnostics); err != nil {
		t.Fatalf("WriteDiagnostics returned error: %v", err)
	}

	got, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}
	if got.NumRows() != 1 {
		t.Fatalf("diagnostic rows = %d, want 1", got.NumRows())
	}
	row := got.Rows[0]
	if row[1].Value != "CLOSEDDATETIME" || row[3].Value != "bad-date" {
		t.Errorf("unexpected diagnostic row: %+v", row)
	}
}
