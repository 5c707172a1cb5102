package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	minLocWidth      = 10
	minReasonWidth   = 20
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow is one abstained group rendered as a table row.
type TableRow struct {
	File     string
	Location string
	Reason   string
}

// TableFormatter formats abstained groups as a styled, column-aligned
// table with a hand-rolled width-budgeting layout.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable renders rows as a table with a header and a heavy/light
// separator, budgeting the Reason column's width to whatever the
// terminal has left after File and Location.
func (t *TableFormatter) FormatTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	fileWidth, locWidth, reasonWidth := t.columnWidths(rows)

	var b strings.Builder
	b.WriteString(t.formatRow("FILE", "LOC", "REASON", fileWidth, locWidth, reasonWidth, t.styles.TableHeader))
	b.WriteString("\n")
	b.WriteString(t.formatSeparator(fileWidth, locWidth, reasonWidth, heavySeparator))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(t.formatRow(row.File, row.Location, row.Reason, fileWidth, locWidth, reasonWidth, t.styles.TableAbstainRow))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *TableFormatter) columnWidths(rows []TableRow) (file, loc, reason int) {
	file, loc = minFileWidth, minLocWidth
	for _, row := range rows {
		if len(row.File) > file {
			file = len(row.File)
		}
		if len(row.Location) > loc {
			loc = len(row.Location)
		}
	}

	reason = t.termWidth - file - loc - 3*tablePadding
	if reason < minReasonWidth {
		reason = minReasonWidth
	}
	return file, loc, reason
}

func (t *TableFormatter) formatRow(file, loc, reason string, fileWidth, locWidth, reasonWidth int, style lipgloss.Style) string {
	line := fmt.Sprintf("%-*s  %-*s  %-*s", fileWidth, truncate(file, fileWidth),
		locWidth, truncate(loc, locWidth), reasonWidth, truncate(reason, reasonWidth))
	if !t.colorEnabled {
		return line
	}
	return style.Render(line)
}

func (t *TableFormatter) formatSeparator(fileWidth, locWidth, reasonWidth int, sep string) string {
	total := fileWidth + locWidth + reasonWidth + 2*tablePadding
	return t.styles.TableSeparator.Render(strings.Repeat(sep, total))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
