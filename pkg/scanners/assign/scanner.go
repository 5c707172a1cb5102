// Package assign implements align.CellScanner for lines shaped like
// "identifier = expression ;": the canonical assignment-list alignment
// case the spec's end-to-end examples are built around.
package assign

import (
	"github.com/tpterovtt/tabalign/pkg/align"
	"github.com/tpterovtt/tabalign/pkg/srctext"
)

// NodeKind tags every row this package builds, so groups mixing
// assignment rows with anything else are rejected before scanning.
const NodeKind = "assignment"

// terminators lists the punctuation that may close an assignment. A
// line lacking both "=" and one of these is not an assignment and is
// skipped when building rows.
const terminators = ";,"

// BuildRows turns src into one leaf RowPartition per line that looks
// like an assignment, nested under a single synthetic root so
// align.TabularAlignTokens can group and align them directly.
func BuildRows(src []byte) *align.RowPartition {
	root := &align.RowPartition{}
	for _, line := range srctext.Lines(src) {
		if !looksLikeAssignment(line.Tokens) {
			continue
		}
		root.Children = append(root.Children, &align.RowPartition{
			Tokens:      line.Tokens,
			NodeKind:    NodeKind,
			StartLine:   line.Number,
			EndLine:     line.Number,
			StartByte:   line.StartByte,
			EndByte:     line.EndByte,
			Indentation: line.Indentation,
		})
	}
	return root
}

func looksLikeAssignment(toks align.TokenRange) bool {
	if len(toks) < 3 {
		return false
	}
	hasEquals := false
	for _, t := range toks {
		if t.Text == "=" {
			hasEquals = true
			break
		}
	}
	if !hasEquals {
		return false
	}
	last := toks[len(toks)-1].Text
	return len(last) > 0 && containsByte(terminators, last[len(last)-1])
}

func containsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

// Scanner assigns up to four columns per row: the identifier (path {0}),
// the "=" (path {1}), the right-hand side as one flush-right cell
// (path {2}, omitted when nothing sits between "=" and the terminator),
// and the trailing terminator (path {3}).
type Scanner struct{}

func (Scanner) ScanRow(row *align.RowPartition, b *align.ColumnBuilder) {
	toks := row.Tokens
	if len(toks) < 3 {
		return
	}
	eq := -1
	for i, t := range toks {
		if t.Text == "=" {
			eq = i
			break
		}
	}
	last := len(toks) - 1
	if eq < 0 || eq == last {
		return
	}
	b.Reserve(align.Path{0}, toks[0:1], true)
	b.Reserve(align.Path{1}, toks[eq:eq+1], true)
	if eq+1 < last {
		b.Reserve(align.Path{2}, toks[eq+1:last], false)
	}
	b.Reserve(align.Path{3}, toks[last:last+1], true)
}
