package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OutputFormat defines the output format for reports
type OutputFormat int

const (
	// plain text output format (default)
	Text OutputFormat = iota
	// JSON output format
	JSON
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// passSeparator is printed between counting passes.
const passSeparator = "*===============================*"

// Render formats a report in the requested output format.
func Render(report *Report, format OutputFormat) (string, error) {
	switch format {
	case Text:
		return renderText(report), nil
	case JSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output format %s", format)
	}
}

// renderText lays out each pass as a header, one "word: count" line per top
// word, and a timing line; passes are separated by passSeparator.
func renderText(report *Report) string {
	var b strings.Builder

	if len(report.Summary) > 0 {
		parts := make([]string, len(report.Summary))
		for i, m := range report.Summary {
			parts[i] = fmt.Sprintf("%d %s", m.Count, m.Unit)
		}
		fmt.Fprintf(&b, "Input: %s\n", strings.Join(parts, ", "))
	}

	for i, pass := range report.Passes {
		if i > 0 {
			b.WriteString(passSeparator + "\n")
		}

		b.WriteString("Word occurrence and count:\n")
		for _, wc := range pass.TopWords {
			fmt.Fprintf(&b, "%s: %d\n", wc.Word, wc.Count)
		}
		fmt.Fprintf(&b, "%s execution time: %s milliseconds or %d nanoseconds\n",
			pass.Label, formatMillis(pass.Elapsed), pass.Elapsed.Nanoseconds())
	}

	return b.String()
}

// formatMillis renders d in milliseconds using the shortest exact decimal.
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Nanoseconds())/1e6, 'f', -1, 64)
}
