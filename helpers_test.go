package cellgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerissecure/cellgrid"
	"github.com/aerissecure/cellgrid/memtable"
)

// Common borders used across tests.
var (
	thinBlack = cellgrid.Border{Style: cellgrid.BorderStyleSingle, Width: 1, Color: "000000"}
	thinRed   = cellgrid.Border{Style: cellgrid.BorderStyleSingle, Width: 1, Color: "FF0000"}
	thickRed  = cellgrid.Border{Style: cellgrid.BorderStyleSingle, Width: 2, Color: "FF0000"}
	thickBlue = cellgrid.Border{Style: cellgrid.BorderStyleDouble, Width: 3, Color: "0000FF"}
)

// mustGrid builds a grid from t and fails the test on error.
func mustGrid(t *testing.T, tbl cellgrid.Table, opts ...cellgrid.Option) *cellgrid.Grid {
	t.Helper()
	g, err := cellgrid.New(tbl, opts...)
	require.NoError(t, err)
	return g
}

// position returns the (row,col) of a memtable cell.
func position(c cellgrid.Cell) [2]int {
	mc := c.(*memtable.Cell)
	return [2]int{mc.Row, mc.Col}
}

// positions collects the positions of a cell sequence.
func positions(cells []cellgrid.Cell) [][2]int {
	out := make([][2]int, 0, len(cells))
	for _, c := range cells {
		out = append(out, position(c))
	}
	return out
}

// stubTable is a Table whose answers are fixed, for shapes memtable cannot
// produce.
type stubTable struct {
	rows, cols int
	cell       func(r, c int) cellgrid.Cell
}

func (s stubTable) RowCount() int               { return s.rows }
func (s stubTable) ColCount() int               { return s.cols }
func (s stubTable) Cell(r, c int) cellgrid.Cell { return s.cell(r, c) }
func (s stubTable) RowKeepWith(int) int         { return 0 }
func (s stubTable) ColumnKeepWith(int) int      { return 0 }

// denseSpanTable is a rows×cols stubTable that returns a cell at every
// position, including ones no real table has; (row,col) reports the given
// span.
func denseSpanTable(rows, cols, row, col, right, down int) stubTable {
	cells := make(map[[2]int]*memtable.Cell)
	return stubTable{rows: rows, cols: cols, cell: func(r, c int) cellgrid.Cell {
		k := [2]int{r, c}
		if cells[k] == nil {
			cells[k] = &memtable.Cell{Row: r, Col: c}
			if r == row && c == col {
				cells[k].SpanRight, cells[k].SpanDown = right, down
			}
		}
		return cells[k]
	}}
}
