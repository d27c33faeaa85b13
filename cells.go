package cellgrid

import "iter"

// Cells yields the anchor cells of rows startRow..endRow in row-major order,
// one entry per merge block whose anchor lies in the range. Blocks anchored
// above startRow are not repeated. The bounds are clamped to the grid; the
// sequence is lazy and can be ranged over any number of times.
func (g *Grid) Cells(startRow, endRow int) iter.Seq[Cell] {
	startRow = max(startRow, 0)
	endRow = min(endRow, g.rows-1)
	return func(yield func(Cell) bool) {
		for r := startRow; r <= endRow; r++ {
			for c := 0; c < g.cols; c++ {
				s := &g.slots[g.id(r, c)]
				a := &g.slots[s.owner]
				if !s.secondary && !yield(a.cell) {
					return
				}
				c += a.cell.MergeRight()
			}
		}
	}
}

// AllCells yields every anchor cell of the grid.
func (g *Grid) AllCells() iter.Seq[Cell] {
	return g.Cells(0, g.rows-1)
}

// RowCells yields the anchor cells whose block starts in row.
func (g *Grid) RowCells(row int) iter.Seq[Cell] {
	return g.Cells(row, row)
}
