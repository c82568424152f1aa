// Package diff computes YAML-aware differences between config files.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// Result holds a computed diff between two config files.
type Result struct {
	// From and To are the compared file locations.
	From string
	To   string

	// Changes is the number of detected differences.
	Changes int

	// Report is the rendered human-readable diff, empty when the files
	// match.
	Report string
}

// HasChanges reports whether any differences were found.
func (r *Result) HasChanges() bool {
	return r.Changes > 0
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	if !r.HasChanges() {
		return "no differences"
	}
	if r.Changes == 1 {
		return "1 difference"
	}
	return fmt.Sprintf("%d differences", r.Changes)
}

// CompareFiles loads two YAML files and computes their diff. Color in the
// rendered report follows useColor.
func CompareFiles(from, to string, useColor bool) (*Result, error) {
	fromInput, err := ytbx.LoadFile(from)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", from, err)
	}
	toInput, err := ytbx.LoadFile(to)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", to, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return nil, fmt.Errorf("comparing files: %w", err)
	}

	result := &Result{
		From:    from,
		To:      to,
		Changes: len(report.Diffs),
	}
	if result.Changes == 0 {
		return result, nil
	}

	rendered, err := renderReport(report, useColor)
	if err != nil {
		return nil, err
	}
	result.Report = rendered
	return result, nil
}

// renderReport renders a dyff report to a string, trimming trailing
// whitespace per line.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	human := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := human.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}
