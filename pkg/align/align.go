// Package align implements Verible-style tabular code alignment: given
// a tree of candidate rows, it groups adjacent rows, verifies they share
// a shape, scans each into columns, and rewrites inter-token spacing so
// the columns line up — or, if any precondition fails, leaves every
// token in the group exactly as it found them. The engine never
// partially aligns a group.
package align

import "github.com/tpterovtt/tabalign/pkg/ivset"

// GroupOutcome records what happened to one candidate group: which rows
// it contained and, if it was not aligned, why.
type GroupOutcome struct {
	Rows   []*RowPartition
	Reason AbstainReason
}

// Aligned reports whether this group's tokens were rewritten.
func (g GroupOutcome) Aligned() bool {
	return g.Reason == AbstainNone
}

// Report is the outcome of one TabularAlignTokens call: one GroupOutcome
// per candidate group considered, in the order they appear in the
// source.
type Report struct {
	Groups []GroupOutcome
}

// TabularAlignTokens is the engine's entry point. root's direct children
// are the candidate rows to group and align; root itself is never
// touched. scanner assigns each row's tokens to columns. ignore lets the
// caller exclude specific rows (e.g. comments) from alignment without
// breaking up their group. sourceText is not read. disabled holds any
// format-disabled byte ranges; a group whose rows' StartByte..EndByte
// span overlaps one abstains.
// columnLimit caps the total rendered width of an aligned row; <= 0
// disables the check.
func TabularAlignTokens(
	root *RowPartition,
	scanner CellScanner,
	ignore func(row *RowPartition) bool,
	sourceText []byte,
	disabled *ivset.Set[int],
	columnLimit int,
) Report {
	if root == nil {
		return Report{}
	}
	var report Report
	for _, group := range findPartitionGroupBoundaries(root.Children) {
		report.Groups = append(report.Groups, alignPartitionGroup(group, scanner, ignore, disabled, columnLimit))
	}
	return report
}

// alignPartitionGroup runs one candidate group through every
// precondition and, if all pass, commits the new spacing. Any rejection
// returns before touching a single token.
func alignPartitionGroup(
	group []*RowPartition,
	scanner CellScanner,
	ignore func(row *RowPartition) bool,
	disabled *ivset.Set[int],
	columnLimit int,
) GroupOutcome {
	rows := extractRows(group, ignore)
	if len(rows) == 0 {
		return GroupOutcome{Rows: rows, Reason: AbstainEmptyInput}
	}
	if len(rows) < 2 {
		return GroupOutcome{Rows: rows, Reason: AbstainUnderfullGroup}
	}
	if !verifyRowsOriginalNodeTypes(rows) {
		return GroupOutcome{Rows: rows, Reason: AbstainHeterogeneousRows}
	}
	if groupOverlapsDisabledRegion(rows, disabled) {
		return GroupOutcome{Rows: rows, Reason: AbstainDisabledRegion}
	}

	agg, perRow := aggregateColumnData(rows, scanner)
	if agg.NumColumns() == 0 {
		return GroupOutcome{Rows: rows, Reason: AbstainEmptyInput}
	}

	matrix := fillAlignmentMatrix(agg, perRow)
	configs := computeColumnConfigs(matrix, agg)

	epilogs := make([]TokenRange, len(rows))
	widths := make([]int, len(rows))
	for i, r := range rows {
		epilogs[i] = rowEpilog(r, perRow[i])
		widths[i] = epilogs[i].TotalWidth()
	}
	if !checkBudget(configs, widths, rows[0].Indentation, columnLimit) {
		return GroupOutcome{Rows: rows, Reason: AbstainBudgetOverflow}
	}

	for i, r := range rows {
		trailing := applyRowSpacing(r, matrix[i], configs, epilogs[i])
		r.TrailingSpaces = trailing
	}

	return GroupOutcome{Rows: rows, Reason: AbstainNone}
}
