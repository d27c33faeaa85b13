package cellgrid

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// slot is one arena entry. owner is the arena index of the anchor slot and
// equals the slot's own index for anchors.
type slot struct {
	cell      Cell // raw cell at this position
	owner     int
	secondary bool
	row, col  int
}

// Grid maps every position of a table to the merge block that owns it and
// resolves effective borders and page connectivity on top of that mapping.
// A Grid is immutable once built and safe for concurrent use.
type Grid struct {
	table      Table
	rows, cols int
	slots      []slot       // row-major, len rows*cols
	index      map[Cell]int // raw cell -> anchor slot
	// borders caches effective borders by anchor slot id.
	borders []atomic.Pointer[BorderSet]
	anchors int
	log     *slog.Logger
}

// New scans t once in row-major order and builds the grid. A position not yet
// claimed makes its cell an anchor that claims every position of its span.
//
// Returns ErrBadShape for negative dimensions, ErrNilCell for a nil cell,
// ErrSpanOutOfBounds for a span that is negative or leaves the table, and,
// under WithStrictMerges, ErrOverlappingMerge.
//
// Cells are indexed by identity, so the dynamic type of every Cell must be
// comparable: New panics on a non-comparable one (a struct holding a slice or
// map, passed by value). Distinct value-type cells that compare equal share
// one index entry; use pointers.
// Complexity: O(rows×cols) time and memory.
func New(t Table, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts)
	rows, cols := t.RowCount(), t.ColCount()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}

	g := &Grid{
		table:   t,
		rows:    rows,
		cols:    cols,
		slots:   make([]slot, rows*cols),
		index:   make(map[Cell]int, rows*cols),
		borders: make([]atomic.Pointer[BorderSet], rows*cols),
		log:     o.logger,
	}
	claimed := make([]bool, rows*cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.id(r, c)
			if claimed[id] {
				continue
			}
			cell := t.Cell(r, c)
			if cell == nil {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNilCell, r, c)
			}
			right, down := cell.MergeRight(), cell.MergeDown()
			if right < 0 || down < 0 || right > cols-1-c || down > rows-1-r {
				return nil, fmt.Errorf("%w: cell (%d,%d) spans %d right, %d down in a %d×%d table",
					ErrSpanOutOfBounds, r, c, right, down, rows, cols)
			}
			g.anchors++

			for dx := 0; dx <= right; dx++ {
				for dy := 0; dy <= down; dy++ {
					pr, pc := r+dy, c+dx
					pid := g.id(pr, pc)
					if claimed[pid] {
						if o.strict {
							return nil, fmt.Errorf("%w: (%d,%d) claimed by cell (%d,%d) and (%d,%d)",
								ErrOverlappingMerge, pr, pc, g.slots[g.slots[pid].owner].row, g.slots[g.slots[pid].owner].col, r, c)
						}
						g.log.Warn("cellgrid: overlapping merge, keeping first claim",
							"row", pr, "col", pc, "anchor_row", r, "anchor_col", c)
						continue
					}
					raw := cell
					if dx != 0 || dy != 0 {
						raw = t.Cell(pr, pc)
						if raw == nil {
							return nil, fmt.Errorf("%w at (%d,%d)", ErrNilCell, pr, pc)
						}
					}
					claimed[pid] = true
					g.slots[pid] = slot{
						cell:      raw,
						owner:     id,
						secondary: dx != 0 || dy != 0,
						row:       pr,
						col:       pc,
					}
					if _, seen := g.index[raw]; !seen {
						g.index[raw] = id
					}
				}
			}
		}
	}

	g.log.Debug("cellgrid: grid built", "rows", rows, "cols", cols, "anchors", g.anchors)
	return g, nil
}

// id maps (row,col) to the row-major arena index.
func (g *Grid) id(row, col int) int {
	return row*g.cols + col
}

// anchorOf returns the anchor slot of the position (row,col).
func (g *Grid) anchorOf(row, col int) *slot {
	return &g.slots[g.slots[g.id(row, col)].owner]
}

func (g *Grid) view(s *slot) Slot {
	a := &g.slots[s.owner]
	return Slot{
		Row:       s.row,
		Col:       s.col,
		AnchorRow: a.row,
		AnchorCol: a.col,
		Secondary: s.secondary,
		Cell:      s.cell,
		Anchor:    a.cell,
	}
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int { return g.rows }

// ColCount returns the number of columns in the grid.
func (g *Grid) ColCount() int { return g.cols }

// Table returns the table the grid was built from.
func (g *Grid) Table() Table { return g.table }

// Anchors returns the number of distinct merge blocks.
func (g *Grid) Anchors() int { return g.anchors }

// InBounds reports whether (row,col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// SlotAt returns the slot at (row,col). Returns ErrOutOfRange outside the grid.
// Complexity: O(1).
func (g *Grid) SlotAt(row, col int) (Slot, error) {
	if !g.InBounds(row, col) {
		return Slot{}, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.view(&g.slots[g.id(row, col)]), nil
}

// resolve returns the arena id of the anchor owning c.
func (g *Grid) resolve(c Cell) (int, error) {
	if c == nil {
		return 0, ErrCellNotFound
	}
	id, ok := g.index[c]
	if !ok {
		return 0, ErrCellNotFound
	}
	return id, nil
}

// Resolve returns the anchor slot of the merge block covering c. Any raw cell
// of the table resolves, including cells merged away by an earlier anchor.
// Returns ErrCellNotFound if c does not belong to this grid.
func (g *Grid) Resolve(c Cell) (Slot, error) {
	id, err := g.resolve(c)
	if err != nil {
		return Slot{}, err
	}
	return g.view(&g.slots[id]), nil
}

// CoveringCell returns the anchor cell that visually owns c. It is c itself
// unless c is merged into another cell.
func (g *Grid) CoveringCell(c Cell) (Cell, error) {
	id, err := g.resolve(c)
	if err != nil {
		return nil, err
	}
	return g.slots[id].cell, nil
}
