package mdtable

import (
	"strings"

	"github.com/tpterovtt/tabalign/pkg/align"
)

// Render reconstructs one table row's line, re-inserting the "|"
// delimiters this package strips out before handing tokens to the
// alignment engine. Token.Spaces carries every column's computed
// padding; row.TrailingSpaces (set only when the group was actually
// aligned) carries the last column's deferred pad, which otherwise has
// no token left to attach to.
func Render(row *align.RowPartition) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", row.Indentation))
	b.WriteByte('|')
	for i, t := range row.Tokens {
		b.WriteString(strings.Repeat(" ", t.Spaces))
		b.WriteString(t.Text)
		if i == len(row.Tokens)-1 {
			b.WriteString(strings.Repeat(" ", row.TrailingSpaces))
		}
		b.WriteByte('|')
	}
	return b.String()
}
