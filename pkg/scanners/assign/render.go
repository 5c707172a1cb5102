package assign

import (
	"strings"

	"github.com/tpterovtt/tabalign/pkg/align"
)

// Render reconstructs one assignment line from its tokens.
// Token.Spaces carries each column's computed padding; row.TrailingSpaces
// (set only when the row's group was actually aligned) carries any pad
// deferred past the last token, which otherwise has no token to attach to.
func Render(row *align.RowPartition) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", row.Indentation))
	for i, t := range row.Tokens {
		b.WriteString(strings.Repeat(" ", t.Spaces))
		b.WriteString(t.Text)
		if i == len(row.Tokens)-1 {
			b.WriteString(strings.Repeat(" ", row.TrailingSpaces))
		}
	}
	return b.String()
}
