// pkg/explore/report.go
package explore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/civicdata/case-ingress/pkg/cleaner"
	"github.com/civicdata/case-ingress/pkg/format"
)

// RenderReport renders a quality report as an aligned text table.
func RenderReport(report *QualityReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("DATA QUALITY: %s (%d rows)\n", report.Table, report.Rows))
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	rows := make([][]string, 0, len(report.Columns))
	for _, q := range report.Columns {
		dates := "-"
		if q.DateColumn {
			dates = strconv.Itoa(q.Parseable)
			if q.Parseable > 0 {
				dates += fmt.Sprintf(" (%s to %s)",
					q.EarliestRaw.Format(cleaner.DateLayout),
					q.LatestRaw.Format(cleaner.DateLayout))
			}
		}
		rows = append(rows, []string{
			q.Column,
			fmt.Sprintf("%d (%.2f%%)", q.Nulls, q.NullPercent()),
			strconv.Itoa(q.Empties),
			strconv.Itoa(q.NonASCII),
			dates,
		})
	}

	sb.WriteString(format.RenderTable(
		[]string{"COLUMN", "NULLS", "EMPTY", "NON-ASCII", "PARSEABLE DATES"}, rows))

	return sb.String()
}
