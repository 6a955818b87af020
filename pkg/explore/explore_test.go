// pkg/explore/explore_test.go
package explore

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/civicdata/case-ingress/pkg/model"
)

func newAuditedTable() *model.Table {
	table := model.NewTable([]string{"TITLE", "CREATIONDATE"})
	table.AppendRow([]model.Cell{model.String("Pothole"), model.String("2021-01-02")})
	table.AppendRow([]model.Cell{model.String("Caf\u00e9 noise"), model.String("2021-06-15T10:30:00")})
	table.AppendRow([]model.Cell{model.Null(), model.String("not-a-date")})
	table.AppendRow([]model.Cell{model.String(""), model.Null()})
	return table
}

func TestAudit(t *testing.T) {
	auditor, err := NewAuditor(zap.NewNop())
	if err != nil {
		t.Fatalf("NewAuditor returned error: %v", err)
	}

	report := auditor.Audit(newAuditedTable(), "current")

	if report.Rows != 4 || len(report.Columns) != 2 {
		t.Fatalf("report shape = %d rows, %d columns", report.Rows, len(report.Columns))
	}

	title := report.Columns[0]
	if title.Nulls != 1 || title.Empties != 1 || title.NonASCII != 1 {
		t.Errorf("TITLE quality = %+v", title)
	}
	if title.DateColumn {
		t.Error("TITLE should not be a date column")
	}
	if title.NullPercent() != 25 {
		t.Errorf("TITLE null percent = %.2f, want 25", title.NullPercent())
	}

	created := report.Columns[1]
	if !created.DateColumn {
		t.Fatal("CREATIONDATE should be a date column")
	}
	if created.Nulls != 1 || created.Parseable != 2 {
		t.Errorf("CREATIONDATE quality = %+v", created)
	}
	wantEarliest := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	wantLatest := time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC)
	if !created.EarliestRaw.Equal(wantEarliest) || !created.LatestRaw.Equal(wantLatest) {
		t.Errorf("date range = %v to %v", created.EarliestRaw, created.LatestRaw)
	}
}

func TestAuditDoesNotModifyTable(t *testing.T) {
	auditor, err := NewAuditor(zap.NewNop())
	if err != nil {
		t.Fatalf("NewAuditor returned error: %v", err)
	}

	table := newAuditedTable()
	auditor.Audit(table, "current")

	if got := table.Rows[1][0].Value; got != "Caf\u00e9 noise" {
		t.Errorf("audit modified cell: %q", got)
	}
	if got := table.Rows[2][1].Value; got != "not-a-date" {
		t.Errorf("audit modified cell: %q", got)
	}
}

func TestRenderReport(t *testing.T) {
	auditor, err := NewAuditor(zap.NewNop())
	if err != nil {
		t.Fatalf("NewAuditor returned error: %v", err)
	}

	rendered := RenderReport(auditor.Audit(newAuditedTable(), "current"))

	for _, want := range []string{
		"DATA QUALITY: current (4 rows)",
		"TITLE",
		"CREATIONDATE",
		"2021-01-02T00:00:00 to 2021-06-15T10:30:00",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("report missing %q:\n%s", want, rendered)
		}
	}
}
