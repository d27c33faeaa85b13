package cellgrid

// LastConnectedRow returns the last row that must stay on the same page as
// row: the smallest row >= row that no merge block or keep-with constraint
// starting at or before it reaches past. The scan window grows as the result
// grows, so the result is a fixed point.
//
// Negative rows start at 0. The result never exceeds RowCount-1.
// Complexity: O(rows×cols) worst case.
func (g *Grid) LastConnectedRow(row int) int {
	if row < 0 {
		row = 0
	}
	last := row
	for r := row; r <= last && r < g.rows; r++ {
		reach := r
		for c := 0; c < g.cols; c++ {
			a := g.anchorOf(r, c)
			reach = max(reach, a.row+max(g.table.RowKeepWith(a.row), a.cell.MergeDown()))
			c += a.cell.MergeRight()
		}
		last = max(last, reach)
	}
	return min(g.rows-1, last)
}

// LastConnectedColumn is the column counterpart of LastConnectedRow, using
// column keep-with counts and rightward spans.
//
// Unlike the row variant the result is clamped to ColCount rather than
// ColCount-1, and each scanned slot is resolved through its owner before its
// span is read. Both differences are kept deliberately until the intended
// behaviour is confirmed.
func (g *Grid) LastConnectedColumn(col int) int {
	if col < 0 {
		col = 0
	}
	last := col
	for c := col; c <= last && c < g.cols; c++ {
		reach := col
		for r := 0; r < g.rows; r++ {
			s := &g.slots[g.id(r, c)]
			if s.secondary {
				s = &g.slots[s.owner]
			}
			reach = max(reach, s.col+max(g.table.ColumnKeepWith(s.col), s.cell.MergeRight()))
			r += s.cell.MergeDown()
		}
		last = max(last, reach)
	}
	return min(last, g.cols)
}

// FirstRowMergedWithRow returns the top row of the merge blocks row belongs
// to, or row itself when nothing above is merged into it. Rows <= 0 and rows
// past the grid are returned unchanged.
func (g *Grid) FirstRowMergedWithRow(row int) int {
	if row <= 0 || row >= g.rows {
		return row
	}
	first := row
	for c := 0; c < g.cols; c++ {
		a := g.anchorOf(row, c)
		first = min(first, a.row)
		c += a.cell.MergeRight()
	}
	return first
}
