package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
)

// TextWriter outputs a human-readable colorized report.
type TextWriter struct{}

var severityColors = map[analysis.Severity]*color.Color{
	analysis.SeverityCritical: color.New(color.FgRed, color.Bold),
	analysis.SeverityHigh:     color.New(color.FgRed),
	analysis.SeverityMedium:   color.New(color.FgYellow),
	analysis.SeverityLow:      color.New(color.FgBlue),
}

func severityIcon(s analysis.Severity) string {
	switch s {
	case analysis.SeverityCritical:
		return "[!!!]"
	case analysis.SeverityHigh:
		return "[!!]"
	case analysis.SeverityMedium:
		return "[!]"
	case analysis.SeverityLow:
		return "[i]"
	default:
		return "[?]"
	}
}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	if report.Total == 0 {
		ew.println("No red flags found.")
		return ew.err
	}

	ew.println("Red Flag Analysis Results")
	ew.println(strings.Repeat("─", 60))
	ew.printf("Found %d red flag(s)\n\n", report.Total)

	for i, f := range report.Findings {
		line := "-"
		if f.LineNumber > 0 {
			line = fmt.Sprintf("%d", f.LineNumber)
		}

		sev := severityLabel(f.Severity)
		ew.printf("%3d. %s  %-18s line %-5s %s\n", i+1, sev, f.Category, line, f.Description)

		flagged := f.MatchedText
		if len(flagged) > 80 {
			flagged = flagged[:80] + "..."
		}
		ew.printf("     %q", flagged)
		if f.Speaker != "" {
			ew.printf("  — %s", f.Speaker)
		}
		ew.printf("  (source: %s)\n", f.Source)
	}

	// Summary
	ew.printf("\n%s\n", strings.Repeat("─", 60))
	var parts []string
	for _, sev := range []analysis.Severity{
		analysis.SeverityCritical,
		analysis.SeverityHigh,
		analysis.SeverityMedium,
		analysis.SeverityLow,
	} {
		if n := report.Summary.BySeverity[string(sev)]; n > 0 {
			parts = append(parts, severityColors[sev].Sprintf("%d %s", n, sev))
		}
	}
	ew.printf("Severity: %s\n", strings.Join(parts, ", "))

	var cats []string
	for cat := range report.Summary.ByCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		ew.printf("  %-20s %d\n", cat, report.Summary.ByCategory[cat])
	}

	return ew.err
}

func severityLabel(s analysis.Severity) string {
	label := fmt.Sprintf("%-5s %-8s", severityIcon(s), strings.ToUpper(string(s)))
	if c, ok := severityColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
