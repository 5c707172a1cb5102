package align

// ColumnConfig is the final, agreed-on geometry for one column: how wide
// it must be to hold its widest cell, its flush direction, and the
// minimum separator width before it.
type ColumnConfig struct {
	Width      int
	FlushLeft  bool
	LeftBorder int
}

// computeColumnConfigs measures every column's width as the maximum
// compact width of any cell in it, and its left border as the maximum
// left-border width any cell in it originally required — the same
// "widest wins" rule applied to width and border alike, so a column
// never ends up narrower, or more tightly spaced, than any row needs.
func computeColumnConfigs(matrix AlignmentMatrix, agg *ColumnSchemaAggregator) []ColumnConfig {
	n := agg.NumColumns()
	configs := make([]ColumnConfig, n)
	for c := 0; c < n; c++ {
		cfg := ColumnConfig{FlushLeft: agg.FlushLeft(c)}
		for _, row := range matrix {
			cell := row[c]
			if w := cell.compactWidth(); w > cfg.Width {
				cfg.Width = w
			}
			if lb := cell.leftBorderWidth(); lb > cfg.LeftBorder {
				cfg.LeftBorder = lb
			}
		}
		configs[c] = cfg
	}
	return configs
}

// totalRowWidth is the width every aligned row will occupy across all
// columns, before any per-row epilog.
func totalRowWidth(configs []ColumnConfig) int {
	total := 0
	for _, c := range configs {
		total += c.LeftBorder + c.Width
	}
	return total
}

// tokenIndex locates p within tokens by pointer identity, returning -1
// if p does not point into tokens' backing array.
func tokenIndex(tokens TokenRange, p *Token) int {
	for i := range tokens {
		if &tokens[i] == p {
			return i
		}
	}
	return -1
}

// rowEpilog is the sub-range of row's tokens beyond the last cell any
// entry reserved — content the aligner leaves exactly as scanned, but
// which still has to fit within columnLimit alongside the aligned
// columns that precede it. Finding "the last cell" is a pointer-identity
// search rather than a value comparison, since two different cells can
// legitimately hold identical text.
func rowEpilog(row *RowPartition, entries []indexedEntry) TokenRange {
	lastIdx := -1
	for _, e := range entries {
		if len(e.Cell) == 0 {
			continue
		}
		idx := tokenIndex(row.Tokens, &e.Cell[len(e.Cell)-1])
		if idx < 0 {
			invariantf("rowEpilog", "cell token is not part of row's own TokenRange")
		}
		if idx > lastIdx {
			lastIdx = idx
		}
	}
	return row.Tokens[lastIdx+1:]
}

// checkBudget reports whether every row still fits within columnLimit
// once every column is padded out to its ColumnConfig.Width, starting
// from indentation — the group's first row's leading offset, assumed
// uniform across the group. columnLimit <= 0 disables the check.
func checkBudget(configs []ColumnConfig, epilogs []int, indentation, columnLimit int) bool {
	if columnLimit <= 0 {
		return true
	}
	base := indentation + totalRowWidth(configs)
	for _, e := range epilogs {
		if base+e > columnLimit {
			return false
		}
	}
	return true
}
