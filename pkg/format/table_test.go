// pkg/format/table_test.go
package format

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	got := RenderTable(
		[]string{"COLUMN", "POPULATED"},
		[][]string{
			{"TITLE", "120"},
			{"CASECLOSUREREASONDESCRIPTION", "98"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), got)
	}

	// Every line pads to the same display width.
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("line %d width = %d, want %d:\n%s", i, len(line), width, got)
		}
	}

	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("second line should be the separator: %q", lines[1])
	}
	if !strings.Contains(lines[3], "CASECLOSUREREASONDESCRIPTION") {
		t.Errorf("missing widest row: %q", lines[3])
	}
}

func TestRenderTableShortRows(t *testing.T) {
	got := RenderTable([]string{"A", "B", "C"}, [][]string{{"1"}})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), got)
	}
	if strings.Count(lines[2], "|") != 4 {
		t.Errorf("short row should still carry every column: %q", lines[2])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(nil, nil); got != "" {
		t.Errorf("empty table should render empty, got %q", got)
	}
}
