package align

// applyRowSpacing rewrites the leading Spaces of every cell row controls
// so that each column c renders at configs[c].Width, flush left or
// right as configs[c].FlushLeft says. Only the first token of each cell
// is touched — whatever spacing a multi-token cell's own tokens carry
// internally is the scanner's business, not the aligner's.
//
// Empty columns contribute no token to write spacing onto, so their
// border-plus-width is carried forward in pending until the next
// non-empty cell (or the row's epilog) absorbs it.
func applyRowSpacing(row *RowPartition, matrix []AlignmentCell, configs []ColumnConfig, epilog TokenRange) (trailing int) {
	pending := 0
	for c, cfg := range configs {
		cell := matrix[c]
		if cell.Empty() {
			pending += cfg.LeftBorder + cfg.Width
			continue
		}
		content := cell.compactWidth()
		pad := cfg.Width - content
		if pad < 0 {
			pad = 0
		}
		first := &cell.Entry.Cell[0]
		if cfg.FlushLeft {
			first.Spaces = cfg.LeftBorder + pending
			pending = pad
		} else {
			first.Spaces = cfg.LeftBorder + pending + pad
			pending = 0
		}
	}
	if len(epilog) > 0 {
		epilog[0].Spaces += pending
		return 0
	}
	return pending
}
