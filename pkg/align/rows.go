package align

// extractRows selects the members of a candidate group that participate
// in alignment: leaves only (grouping nodes have nothing to align), and
// anything the caller's ignore predicate accepts is dropped from
// consideration entirely — its tokens are left untouched by whatever
// spacing pass follows, but its absence does not itself invalidate the
// group.
func extractRows(group []*RowPartition, ignore func(*RowPartition) bool) []*RowPartition {
	out := make([]*RowPartition, 0, len(group))
	for _, p := range group {
		if !p.IsLeaf() {
			continue
		}
		if ignore != nil && ignore(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// verifyRowsOriginalNodeTypes reports whether every row shares the same
// NodeKind, the precondition for applying one CellScanner contract
// uniformly across the whole group.
func verifyRowsOriginalNodeTypes(rows []*RowPartition) bool {
	if len(rows) == 0 {
		return true
	}
	kind := rows[0].NodeKind
	for _, r := range rows[1:] {
		if r.NodeKind != kind {
			return false
		}
	}
	return true
}
