package cellgrid_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/cellgrid/memtable"
)

// TestCells_Order verifies row-major enumeration with one entry per block.
func TestCells_Order(t *testing.T) {
	tbl := memtable.New(3, 3).Merge(0, 0, 1, 1)
	g := mustGrid(t, tbl)

	got := positions(slices.Collect(g.AllCells()))
	want := [][2]int{{0, 0}, {0, 2}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	require.Equal(t, want, got)
	require.Len(t, got, g.Anchors())
}

// TestCells_Ranges checks partial ranges, single rows and clamping.
func TestCells_Ranges(t *testing.T) {
	tbl := memtable.New(4, 3).Merge(0, 0, 1, 1).Merge(2, 1, 1, 1)
	g := mustGrid(t, tbl)

	assert.Equal(t, [][2]int{{0, 0}, {0, 2}}, positions(slices.Collect(g.RowCells(0))))
	assert.Equal(t, [][2]int{{1, 2}}, positions(slices.Collect(g.RowCells(1))))
	assert.Equal(t, [][2]int{{3, 0}}, positions(slices.Collect(g.RowCells(3))))
	assert.Equal(t, [][2]int{{1, 2}, {2, 0}, {2, 1}}, positions(slices.Collect(g.Cells(1, 2))))
	assert.Equal(t, slices.Collect(g.AllCells()), slices.Collect(g.Cells(-4, 40)))
	assert.Empty(t, slices.Collect(g.Cells(3, 1)))
}

// TestCells_Restartable verifies that a sequence can be ranged over again
// and stops early when asked.
func TestCells_Restartable(t *testing.T) {
	g := mustGrid(t, memtable.New(3, 3).Merge(1, 0, 2, 0))
	seq := g.AllCells()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 7)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// TestCells_Completeness checks that every anchor appears exactly once across
// a few layouts.
func TestCells_Completeness(t *testing.T) {
	for _, tbl := range []*memtable.Table{
		memtable.New(1, 1),
		memtable.New(2, 6).Merge(0, 0, 5, 0),
		memtable.New(6, 2).Merge(0, 1, 0, 5),
		memtable.New(5, 5).Merge(0, 0, 1, 1).Merge(0, 3, 1, 2).Merge(3, 0, 2, 1),
	} {
		g := mustGrid(t, tbl)
		seen := make(map[[2]int]bool)
		for c := range g.AllCells() {
			p := position(c)
			require.False(t, seen[p], "duplicate anchor %v", p)
			seen[p] = true

			s, err := g.SlotAt(p[0], p[1])
			require.NoError(t, err)
			require.False(t, s.Secondary)
		}
		require.Len(t, seen, g.Anchors())
	}
}
