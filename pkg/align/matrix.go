package align

// AlignmentCell is one slot of the alignment matrix: either a cell a row
// actually reserved, or an empty filler slot for a column that row's
// scan never visited.
type AlignmentCell struct {
	Entry     *ColumnEntry // nil for a filler slot
	FlushLeft bool
}

// Empty reports whether the cell is a filler slot.
func (c AlignmentCell) Empty() bool {
	return c.Entry == nil
}

// compactWidth is the cell's contribution to its column's width: the
// rendered width of its token range, or 0 for a filler slot.
func (c AlignmentCell) compactWidth() int {
	if c.Entry == nil {
		return 0
	}
	return c.Entry.Cell.CompactWidth()
}

// leftBorderWidth is the cell's contribution to its column's left
// border: the pre-spacing its own first token originally required, or
// 0 for a filler slot or an empty cell.
func (c AlignmentCell) leftBorderWidth() int {
	if c.Entry == nil || len(c.Entry.Cell) == 0 {
		return 0
	}
	return c.Entry.Cell[0].SpacesRequired
}

// AlignmentMatrix is rows-by-columns of AlignmentCell, one row per
// candidate row in the group and one column per entry in the group's
// ColumnSchemaAggregator.
type AlignmentMatrix [][]AlignmentCell

// fillAlignmentMatrix builds the dense matrix from the per-row entries
// aggregateColumnData already resolved to column indices.
//
// The original engine must interpolate unclaimed columns with a
// right-to-left upper_bound search, because it discovers each row's
// columns one at a time against a schema that is still growing. Here,
// aggregateColumnData already makes a full first pass over every row
// before any column index is handed out, so by the time fillAlignmentMatrix
// runs every row's entries carry final, absolute indices into the same
// shared schema — placing a cell is then a direct index, and unclaimed
// columns default to the zero-value (empty) AlignmentCell with no search
// needed.
func fillAlignmentMatrix(agg *ColumnSchemaAggregator, perRow [][]indexedEntry) AlignmentMatrix {
	numCols := agg.NumColumns()
	matrix := make(AlignmentMatrix, len(perRow))
	for i, entries := range perRow {
		row := make([]AlignmentCell, numCols)
		for c := range row {
			row[c] = AlignmentCell{FlushLeft: agg.FlushLeft(c)}
		}
		for _, e := range entries {
			if e.ColumnIndex < 0 || e.ColumnIndex >= numCols {
				invariantf("fillAlignmentMatrix", "column index %d out of range [0,%d)", e.ColumnIndex, numCols)
			}
			entryCopy := e.ColumnEntry
			row[e.ColumnIndex] = AlignmentCell{Entry: &entryCopy, FlushLeft: e.FlushLeft}
		}
		matrix[i] = row
	}
	return matrix
}
