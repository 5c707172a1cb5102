package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeColumnConfigsLeftBorderTracksWidestRequest(t *testing.T) {
	agg := NewColumnSchemaAggregator()
	agg.Reserve(Path{0}, false)
	agg.Reserve(Path{1}, false)

	matrix := AlignmentMatrix{
		{
			{Entry: &ColumnEntry{Cell: TokenRange{{Text: "x", SpacesRequired: 1}}}},
			{Entry: &ColumnEntry{Cell: TokenRange{{Text: "1", SpacesRequired: 1}}}},
		},
		{
			{Entry: &ColumnEntry{Cell: TokenRange{{Text: "longname", SpacesRequired: 1}}}},
			{Entry: &ColumnEntry{Cell: TokenRange{{Text: "22", SpacesRequired: 3}}}},
		},
	}

	configs := computeColumnConfigs(matrix, agg)
	assert.Equal(t, 1, configs[0].LeftBorder)
	assert.Equal(t, 3, configs[1].LeftBorder, "column border must track the widest request across rows, not a fixed constant")
}

func TestComputeColumnConfigsIgnoresEmptyCellsForLeftBorder(t *testing.T) {
	agg := NewColumnSchemaAggregator()
	agg.Reserve(Path{0}, false)

	matrix := AlignmentMatrix{
		{{}}, // filler slot: no entry reserved this column in this row
		{{Entry: &ColumnEntry{Cell: TokenRange{{Text: "x", SpacesRequired: 2}}}}},
	}

	configs := computeColumnConfigs(matrix, agg)
	assert.Equal(t, 2, configs[0].LeftBorder)
}

func TestCheckBudgetAddsIndentationToColumnWidth(t *testing.T) {
	configs := []ColumnConfig{{Width: 5, LeftBorder: 1}, {Width: 5, LeftBorder: 1}}
	epilogs := []int{0}

	assert.True(t, checkBudget(configs, epilogs, 0, 12))
	assert.False(t, checkBudget(configs, epilogs, 10, 12),
		"a deeply indented row must count its indentation toward the limit")
}
