package align

// RowPartition is one node of the partition tree the engine aligns.
// Leaves (Children == nil) are candidate rows; their Tokens are the
// format tokens the engine may re-space. Non-leaf nodes are only used
// to walk the tree down to the slice of siblings a caller wants
// aligned — TabularAlignTokens itself only ever groups and aligns the
// direct Children of the node it is given.
type RowPartition struct {
	Tokens   TokenRange
	Children []*RowPartition

	// NodeKind identifies the syntax-tree production that produced this
	// row, e.g. "assignment" or "table-row". Rows within a group must
	// share NodeKind or the whole group abstains (verifyRowsOriginalNodeTypes).
	NodeKind string

	// StartLine and EndLine are 1-based, inclusive line numbers of this
	// partition's original span, used to detect blank-line separators
	// between candidate rows.
	StartLine, EndLine int

	// StartByte and EndByte bound this partition's span in the original
	// source text, used to test overlap with a disabled-formatting
	// region.
	StartByte, EndByte int

	// Indentation is the number of columns this row's first token is
	// offset from column 0 in the original source — its leading
	// whitespace, kept separate from its tokens' own Spaces so a
	// column's left border never double-counts it. The budget check
	// adds the group's first row's Indentation to the aligned columns'
	// total width, since that is how far the rendered line actually
	// starts.
	Indentation int

	// TrailingSpaces is set by a successful alignment pass to the
	// number of padding spaces owed after the row's last token — the
	// deferred pad of a flush-left final column that has no epilog
	// token to absorb it. Renderers that care about trailing whitespace
	// (e.g. a table's closing "|") should add this many spaces after
	// the last token; renderers that don't can ignore it.
	TrailingSpaces int
}

// IsLeaf reports whether p is a candidate row rather than a grouping
// node.
func (p *RowPartition) IsLeaf() bool {
	return len(p.Children) == 0
}

// blankLineSeparated decides whether two textually-adjacent
// partitions are separated by at least one blank source line. A blank
// line always starts a new partition group, regardless of any other
// property of the partitions on either side of it.
func blankLineSeparated(prev, next *RowPartition) bool {
	return next.StartLine-prev.EndLine > 1
}

// findPartitionGroupBoundaries splits siblings into maximal runs with no
// blank-line separator between consecutive elements. Each returned slice
// is a candidate group; groups are still subject to further rejection
// (heterogeneous node kinds, disabled regions, underfull size) before
// alignment is attempted.
func findPartitionGroupBoundaries(siblings []*RowPartition) [][]*RowPartition {
	if len(siblings) == 0 {
		return nil
	}
	var groups [][]*RowPartition
	start := 0
	for i := 1; i < len(siblings); i++ {
		if blankLineSeparated(siblings[i-1], siblings[i]) {
			groups = append(groups, siblings[start:i])
			start = i
		}
	}
	groups = append(groups, siblings[start:])
	return groups
}
