package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/tpterovtt/tabalign/internal/ui/pretty"
)

// TextReporter formats results as styled terminal output, one line per
// abstained group plus a one-line summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	abstained := 0
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		for _, g := range file.Report.Groups {
			if g.Aligned() || len(g.Rows) == 0 {
				continue
			}
			abstained++
			first, last := g.Rows[0], g.Rows[len(g.Rows)-1]
			fmt.Fprintf(r.bw, "%s:%d-%d: %s\n",
				r.styles.FilePath.Render(file.Path),
				first.StartLine, last.EndLine,
				r.styles.AbstainKind.Render(g.Reason.String()),
			)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.summaryLine(result, abstained))
	}

	return abstained, nil
}

func (r *TextReporter) summaryLine(result *Result, abstained int) string {
	aligned := result.AlignedGroups()
	if abstained == 0 {
		return r.styles.Success.Render(fmt.Sprintf("%d groups aligned, 0 abstained", aligned))
	}
	return r.styles.Warning.Render(fmt.Sprintf("%d groups aligned, %d abstained", aligned, abstained))
}
