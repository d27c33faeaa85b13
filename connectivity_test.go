package cellgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerissecure/cellgrid"
	"github.com/aerissecure/cellgrid/memtable"
)

// TestLastConnectedRow covers merges, keep-with chains and clamping.
func TestLastConnectedRow(t *testing.T) {
	cases := []struct {
		name string
		tbl  *memtable.Table
		row  int
		want int
	}{
		{"NoMerges", memtable.New(5, 2), 2, 2},
		{"MergeDown", memtable.New(5, 2).Merge(2, 0, 0, 2), 2, 4},
		{"InsideMerge", memtable.New(5, 2).Merge(2, 0, 0, 2), 3, 4},
		{"BeforeMerge", memtable.New(5, 2).Merge(2, 0, 0, 2), 1, 1},
		{"MergeInSecondColumn", memtable.New(5, 3).Merge(0, 0, 1, 0).Merge(1, 2, 0, 1), 1, 2},
		{"KeepWith", memtable.New(5, 2).KeepRowWith(0, 1), 0, 1},
		{"KeepWithChain", memtable.New(5, 2).KeepRowWith(0, 1).KeepRowWith(1, 2), 0, 3},
		{"KeepIntoMerge", memtable.New(6, 2).KeepRowWith(0, 1).Merge(1, 1, 0, 2), 0, 3},
		{"LastRowKeep", memtable.New(5, 2).KeepRowWith(4, 3), 4, 4},
		{"PastEnd", memtable.New(5, 2), 9, 4},
		{"Negative", memtable.New(5, 2).KeepRowWith(0, 2), -3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.tbl)
			assert.Equal(t, tc.want, g.LastConnectedRow(tc.row))
		})
	}
}

// TestLastConnectedRow_Boundary checks that the last row never reaches past
// the grid.
func TestLastConnectedRow_Boundary(t *testing.T) {
	tbl := memtable.New(4, 3).Merge(2, 0, 2, 1).KeepRowWith(3, 5)
	g := mustGrid(t, tbl)
	for r := 0; r < tbl.RowCount(); r++ {
		got := g.LastConnectedRow(r)
		assert.GreaterOrEqual(t, got, r)
		assert.LessOrEqual(t, got, tbl.RowCount()-1)
	}
	assert.Equal(t, 3, g.LastConnectedRow(3))
}

// TestLastConnectedColumn covers rightward merges and column keep-with. The
// result is clamped to ColCount, one past the last column.
func TestLastConnectedColumn(t *testing.T) {
	cases := []struct {
		name string
		tbl  *memtable.Table
		col  int
		want int
	}{
		{"NoMerges", memtable.New(2, 5), 2, 2},
		{"MergeRight", memtable.New(2, 5).Merge(0, 1, 2, 0), 1, 3},
		{"InsideMerge", memtable.New(2, 5).Merge(0, 1, 2, 0), 2, 3},
		{"BlockFromAbove", memtable.New(3, 5).Merge(0, 1, 1, 2), 2, 2},
		{"KeepWithChain", memtable.New(2, 5).KeepColumnWith(0, 1).KeepColumnWith(1, 1), 0, 2},
		{"ClampedToColCount", memtable.New(2, 5).KeepColumnWith(4, 2), 4, 5},
		{"PastEnd", memtable.New(2, 5), 10, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.tbl)
			assert.Equal(t, tc.want, g.LastConnectedColumn(tc.col))
		})
	}
}

// TestFirstRowMergedWithRow checks normalization to the top of a block.
func TestFirstRowMergedWithRow(t *testing.T) {
	tbl := memtable.New(5, 3).Merge(1, 1, 0, 2)
	g := mustGrid(t, tbl)

	want := map[int]int{-1: -1, 0: 0, 1: 1, 2: 1, 3: 1, 4: 4, 5: 5, 12: 12}
	for row, first := range want {
		assert.Equal(t, first, g.FirstRowMergedWithRow(row), "row %d", row)
	}
}

// TestFirstRowMergedWithRow_Widest checks that the highest anchor in the row
// wins when several blocks cross it.
func TestFirstRowMergedWithRow_Widest(t *testing.T) {
	tbl := memtable.New(5, 3).Merge(2, 0, 0, 2).Merge(0, 2, 0, 4)
	g := mustGrid(t, tbl)
	assert.Equal(t, 0, g.FirstRowMergedWithRow(3))
	assert.Equal(t, cellgrid.RowRange{First: 0, Last: 4}, cellgrid.RowRange{First: g.FirstRowMergedWithRow(4), Last: g.LastConnectedRow(0)})
}
