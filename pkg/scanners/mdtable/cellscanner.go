package mdtable

import "github.com/tpterovtt/tabalign/pkg/align"

// Scanner reserves one flush-left column per cell index. Markdown's own
// per-column alignment markers (":--", "--:", ":-:") live in the
// delimiter row this package already excludes from the row set, so
// nothing here re-derives them — the engine only ever adjusts the
// whitespace around "|", never which side of a cell it pads.
type Scanner struct{}

func (Scanner) ScanRow(row *align.RowPartition, b *align.ColumnBuilder) {
	for i := range row.Tokens {
		b.Reserve(align.Path{i}, row.Tokens[i:i+1], true)
	}
}
