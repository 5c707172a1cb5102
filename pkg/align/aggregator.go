package align

// columnSchema is one discovered column: its identity (Path) and the
// spacing rule every cell registered at that Path agreed on.
type columnSchema struct {
	Path      Path
	FlushLeft bool
}

// ColumnSchemaAggregator merges the sparse, per-row ColumnEntry values a
// CellScanner produces into one dense, ordered column list shared by the
// whole group. Path is a slice, so it is neither comparable with == nor
// usable as a map key; the aggregator instead keeps its columns sorted
// by Path and locates each one with a binary search; this is the
// "flat sorted array" alternative the design notes call out for exactly
// this situation.
type ColumnSchemaAggregator struct {
	columns []columnSchema
}

// NewColumnSchemaAggregator returns an empty aggregator.
func NewColumnSchemaAggregator() *ColumnSchemaAggregator {
	return &ColumnSchemaAggregator{}
}

// search returns the index of path's column if present, and the insert
// position that keeps a.columns sorted by Path if not.
func (a *ColumnSchemaAggregator) search(path Path) (idx int, found bool) {
	lo, hi := 0, len(a.columns)
	for lo < hi {
		mid := (lo + hi) / 2
		switch a.columns[mid].Path.Compare(path) {
		case 0:
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// Reserve returns the dense column index for path, creating a new
// column at its sorted position the first time path is seen.
func (a *ColumnSchemaAggregator) Reserve(path Path, flushLeft bool) int {
	idx, found := a.search(path)
	if found {
		return idx
	}
	a.columns = append(a.columns, columnSchema{})
	copy(a.columns[idx+1:], a.columns[idx:len(a.columns)-1])
	a.columns[idx] = columnSchema{Path: path.Clone(), FlushLeft: flushLeft}
	return idx
}

// Lookup returns the dense index of path without creating it.
func (a *ColumnSchemaAggregator) Lookup(path Path) (idx int, found bool) {
	return a.search(path)
}

// NumColumns returns the number of distinct columns discovered so far.
func (a *ColumnSchemaAggregator) NumColumns() int {
	return len(a.columns)
}

// FlushLeft reports the spacing rule registered for column i.
func (a *ColumnSchemaAggregator) FlushLeft(i int) bool {
	return a.columns[i].FlushLeft
}

// aggregateColumnData scans every row with scanner and folds the results
// into a shared ColumnSchemaAggregator, returning the aggregator and,
// for each row, its entries tagged with their final dense column index.
func aggregateColumnData(rows []*RowPartition, scanner CellScanner) (*ColumnSchemaAggregator, [][]indexedEntry) {
	agg := NewColumnSchemaAggregator()
	perRow := make([][]indexedEntry, len(rows))
	for i, row := range rows {
		var b ColumnBuilder
		scanner.ScanRow(row, &b)
		entries := b.Entries()
		tagged := make([]indexedEntry, len(entries))
		for j, e := range entries {
			tagged[j] = indexedEntry{
				ColumnEntry: e,
				ColumnIndex: agg.Reserve(e.Path, e.FlushLeft),
			}
		}
		perRow[i] = tagged
	}
	// A later row can insert a path that sorts before earlier ones and
	// shift their indices, so resolve every index again once all rows
	// are in.
	for _, tagged := range perRow {
		for j := range tagged {
			tagged[j].ColumnIndex, _ = agg.Lookup(tagged[j].Path)
		}
	}
	return agg, perRow
}

// indexedEntry is a ColumnEntry after its Path has been resolved to a
// dense column index in the shared schema.
type indexedEntry struct {
	ColumnEntry
	ColumnIndex int
}
