package cellgrid

// EffectiveBorders returns the borders to draw for the merge block covering c.
// The result is computed once per block and shared by every caller: treat it
// as read-only.
//
// Resolution order:
//  1. Seed from the anchor's own border set, every edge materialized from the set
//     defaults. An anchor without one starts empty.
//  2. A block spanning columns takes its right edge from the explicit right
//     border of the last covered cell in the anchor row, or none. Rows and the
//     bottom edge likewise.
//  3. Each edge is compared with the touching edge of the neighbouring block
//     by effective width. Left and top neighbours win ties; right and bottom
//     neighbours must be strictly wider. A shared edge therefore settles on
//     the same border whichever side is queried first.
//
// Returns ErrCellNotFound if c does not belong to this grid.
// Complexity: O(1) after the first call per block.
func (g *Grid) EffectiveBorders(c Cell) (*BorderSet, error) {
	id, err := g.resolve(c)
	if err != nil {
		return nil, err
	}
	if bs := g.borders[id].Load(); bs != nil {
		return bs, nil
	}

	bs := g.computeBorders(id)
	if g.borders[id].CompareAndSwap(nil, bs) {
		a := &g.slots[id]
		g.log.Debug("cellgrid: borders resolved", "row", a.row, "col", a.col)
		return bs, nil
	}
	return g.borders[id].Load(), nil
}

func (g *Grid) computeBorders(id int) *BorderSet {
	a := &g.slots[id]
	own := a.cell.Borders()

	result := &BorderSet{}
	for _, side := range Sides {
		result.SetEdge(side, own.Resolved(side))
	}

	if right := a.cell.MergeRight(); right > 0 {
		last := g.slots[g.id(a.row, a.col+right)].cell
		result.Right = explicitEdge(last, Right)
	}
	if down := a.cell.MergeDown(); down > 0 {
		last := g.slots[g.id(a.row+down, a.col)].cell
		result.Bottom = explicitEdge(last, Bottom)
	}

	for _, side := range Sides {
		n := g.neighbor(a, side)
		if n == nil {
			continue
		}
		nb := n.cell.Borders()
		if nb == nil {
			continue
		}
		touching := side.Opposite()
		theirs, ours := nb.EffectiveWidth(touching), result.EffectiveWidth(side)
		if theirs > ours || (theirs == ours && (side == Left || side == Top)) {
			result.SetEdge(side, nb.Resolved(touching))
		}
	}
	return result
}

// explicitEdge returns a copy of the border c itself sets on side, ignoring
// set-level defaults.
func explicitEdge(c Cell, side Side) *Border {
	e := c.Borders().Edge(side)
	if e == nil {
		return nil
	}
	b := *e
	return &b
}

// neighbor returns the anchor of the block one step past a's block boundary
// on side, measured from the anchor row or column, or nil at the table edge.
func (g *Grid) neighbor(a *slot, side Side) *slot {
	switch side {
	case Left:
		if a.col > 0 {
			return g.anchorOf(a.row, a.col-1)
		}
	case Right:
		if c := a.col + a.cell.MergeRight() + 1; c < g.cols {
			return g.anchorOf(a.row, c)
		}
	case Top:
		if a.row > 0 {
			return g.anchorOf(a.row-1, a.col)
		}
	case Bottom:
		if r := a.row + a.cell.MergeDown() + 1; r < g.rows {
			return g.anchorOf(r, a.col)
		}
	}
	return nil
}
