package align

import "github.com/tpterovtt/tabalign/pkg/ivset"

// groupSpan returns the byte range spanned by every row in rows. It
// panics if rows is empty; callers must check that first.
func groupSpan(rows []*RowPartition) (startByte, endByte int) {
	startByte, endByte = rows[0].StartByte, rows[0].EndByte
	for _, r := range rows[1:] {
		if r.StartByte < startByte {
			startByte = r.StartByte
		}
		if r.EndByte > endByte {
			endByte = r.EndByte
		}
	}
	return startByte, endByte
}

// groupOverlapsDisabledRegion reports whether any byte in the group's
// span falls inside a format-disabled region. A group is rejected on
// any overlap at all, not only when it is wholly disabled: the group's
// span is the set of candidate rows' bytes, and
// disabled.Complement(span) is exactly the enabled portion of that
// span, so the two differ iff at least one byte of span is disabled.
// This mirrors align.cc's AnyPartitionSubRangeIsDisabled, which computes
// precisely that set difference.
func groupOverlapsDisabledRegion(rows []*RowPartition, disabled *ivset.Set[int]) bool {
	if disabled == nil || disabled.Empty() || len(rows) == 0 {
		return false
	}
	startByte, endByte := groupSpan(rows)
	if endByte <= startByte {
		return false
	}
	span := ivset.Interval[int]{Min: startByte, Max: endByte}
	enabled := disabled.Complement(span)
	return enabled.SumOfSizes() != span.Len()
}
