// pkg/cleaner/operations.go
package cleaner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/civicdata/case-ingress/pkg/model"
)

// DateLayout is the canonical serialization for parsed date-time values.
const DateLayout = "2006-01-02T15:04:05"

// punctReplacer folds typographic quotes, dashes, and bullet glyphs into
// their plain ASCII equivalents before the non-ASCII strip, so that the
// strip never discards them.
var punctReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"—", "-", // em-dash
	"–", "-", // en-dash
	"•", "-", // bullet
	"·", "-", // middle dot
)

// multiSpace matches runs of two-or-more ASCII spaces (spaces only, not
// all whitespace: newlines and tabs are handled as separate steps).
var multiSpace = regexp.MustCompile(` {2,}`)

// NormalizeText converts a raw text value into its canonical single-line,
// printable-ASCII form. The empty string passes through unchanged. The
// function is idempotent: applying it to its own output is a no-op.
func NormalizeText(text string) string {
	if text == "" {
		return text
	}

	text = punctReplacer.Replace(text)

	// Strip everything outside printable ASCII, keeping newline, carriage
	// return, and tab for the whitespace steps below.
	text = stripNonPrintable(text)

	text = multiSpace.ReplaceAllString(text, " ")

	// Newlines and carriage returns become spaces so that no embedded line
	// break survives into row-based serialization.
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")

	text = strings.ReplaceAll(text, "\t", " ")

	// The replacements above can reintroduce doubled spaces.
	text = multiSpace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// NormalizeTextCell applies NormalizeText to a cell, passing null and
// empty cells through untouched. Normalization never invents content.
func NormalizeTextCell(c model.Cell) model.Cell {
	if c.IsEmpty() {
		return c
	}
	return model.String(NormalizeText(c.Value))
}

// stripNonPrintable removes every character outside 0x20-0x7E except
// newline, carriage return, and horizontal tab.
func stripNonPrintable(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r <= 0x7e) || r == '\n' || r == '\r' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// dateFormats is the best-effort parse list, tried in order. ISO forms
// take priority; slash and dash forms are month-first, matching the US
// municipal export the pipeline ingests.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 3:04:05 PM",
	"01/02/2006",
	"2006/01/02",
	"01-02-2006",
}

// ParseDate attempts a best-effort parse of a date-time string against
// the format list above. Parsing is deterministic: a failure would
// reproduce identically on retry, so none is attempted.
func ParseDate(value string) (time.Time, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, errors.New("empty string")
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time from '%s'", cleaned)
}
