package output

import (
	"fmt"
	"io"
	"os"

	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
)

// Report is the top-level renderable result of one analysis.
type Report struct {
	Total    int                `json:"total"`
	Findings []analysis.Finding `json:"findings"`
	Summary  Summary            `json:"summary"`
}

// Summary counts findings by severity and by category.
type Summary struct {
	BySeverity map[string]int `json:"by_severity"`
	ByCategory map[string]int `json:"by_category"`
}

// NewReport assembles a report from ranked findings.
func NewReport(findings []analysis.Finding) *Report {
	r := &Report{
		Total:    len(findings),
		Findings: findings,
		Summary: Summary{
			BySeverity: make(map[string]int),
			ByCategory: make(map[string]int),
		},
	}
	if r.Findings == nil {
		r.Findings = []analysis.Finding{}
	}
	for _, f := range findings {
		r.Summary.BySeverity[string(f.Severity)]++
		r.Summary.ByCategory[f.Category]++
	}
	return r
}

// Writer renders a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to outPath, or stdout when outPath is
// empty.
func WriteReport(report *Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}
