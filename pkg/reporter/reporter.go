// Package reporter renders alignment outcomes produced by pkg/align as
// text, table, or JSON output, the way the teacher's own reporter
// package turns a lint run into terminal or machine-readable output.
package reporter

import (
	"context"
	"fmt"

	"github.com/tpterovtt/tabalign/pkg/align"
)

// FileReport pairs one input file with the Report tabalign produced for
// it, or the error that stopped processing before a Report existed.
type FileReport struct {
	Path   string
	Report align.Report
	Error  error
}

// Result is every file a run touched.
type Result struct {
	Files []FileReport
}

// AbstainedGroups counts groups across all files that were left
// unchanged.
func (r *Result) AbstainedGroups() int {
	var n int
	for _, f := range r.Files {
		for _, g := range f.Report.Groups {
			if !g.Aligned() {
				n++
			}
		}
	}
	return n
}

// AlignedGroups counts groups across all files that were rewritten.
func (r *Result) AlignedGroups() int {
	var n int
	for _, f := range r.Files {
		for _, g := range f.Report.Groups {
			if g.Aligned() {
				n++
			}
		}
	}
	return n
}

// Reporter formats and writes a Result.
type Reporter interface {
	// Report writes formatted output for result and returns the number
	// of abstained groups (useful for deciding an exit code) and any
	// write error.
	Report(ctx context.Context, result *Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatTable
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
