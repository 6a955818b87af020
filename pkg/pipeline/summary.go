// pkg/pipeline/summary.go
package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/civicdata/case-ingress/pkg/format"
)

// RenderSummary renders the operator-visible cleaning summary: per job,
// the per-column populated counts and percentages, or the failure that
// stopped the job.
func RenderSummary(summary *RunSummary) string {
	var sb strings.Builder

	sb.WriteString("CLEANING SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	for _, job := range summary.Jobs {
		sb.WriteString(fmt.Sprintf("\nTable %q", job.Name))
		if !job.Success {
			sb.WriteString(" - FAILED\n")
			for _, rec := range job.Errors {
				sb.WriteString("  " + rec.String() + "\n")
			}
			continue
		}
		sb.WriteString(fmt.Sprintf(" - %d rows cleaned in %s", job.RowsWritten, job.Duration.Round(time.Millisecond)))
		if n := len(job.Diagnostics); n > 0 {
			sb.WriteString(fmt.Sprintf(", %d date value(s) unparseable", n))
		}
		sb.WriteString("\n")

		rows := make([][]string, 0, len(job.Stats))
		for _, st := range job.Stats {
			rows = append(rows, []string{
				st.Column,
				string(st.Kind),
				strconv.Itoa(st.Populated),
				fmt.Sprintf("%.2f%%", st.Percent()),
			})
		}
		sb.WriteString(format.RenderTable([]string{"COLUMN", "KIND", "POPULATED", "PCT"}, rows))
	}

	sb.WriteString(fmt.Sprintf("\n%d job(s) succeeded, %d failed, total %s\n",
		summary.SucceededCount(), summary.FailedCount(), summary.Duration.Round(time.Millisecond)))

	return sb.String()
}
