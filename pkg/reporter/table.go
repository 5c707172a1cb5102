package reporter

import (
	"bufio"
	"context"
	"fmt"

	"golang.org/x/term"

	"github.com/tpterovtt/tabalign/internal/ui/pretty"
)

// TableReporter formats results as a styled table, one row per
// abstained group.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	termWidth := getTerminalWidth(opts.Writer)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, termWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *Result) (_ int, err error) {
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

	var rows []pretty.TableRow
	abstained := 0
	for _, file := range result.Files {
		if file.Error != nil {
			rows = append(rows, pretty.TableRow{File: file.Path, Location: "-", Reason: file.Error.Error()})
			continue
		}
		for _, g := range file.Report.Groups {
			if g.Aligned() || len(g.Rows) == 0 {
				continue
			}
			first, last := g.Rows[0], g.Rows[len(g.Rows)-1]
			abstained++
			rows = append(rows, pretty.TableRow{
				File:     file.Path,
				Location: fmt.Sprintf("%d-%d", first.StartLine, last.EndLine),
				Reason:   g.Reason.String(),
			})
		}
	}

	if len(rows) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("All groups aligned."))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(rows))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Warning.Render(fmt.Sprintf("%d groups abstained", abstained)))
	}

	return abstained, nil
}

func getTerminalWidth(w any) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
