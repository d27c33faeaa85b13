// Package memtable provides a mutable in-memory cellgrid.Table.
package memtable

import "github.com/aerissecure/cellgrid"

// Cell is a table cell. The zero value is a 1×1 cell without borders.
type Cell struct {
	Row, Col  int                 // position in the owning table
	Value     string              // free-form content, ignored by the engine
	SpanRight int                 // extra columns merged into this cell
	SpanDown  int                 // extra rows merged into this cell
	Border    *cellgrid.BorderSet // own borders, nil if none
}

func (c *Cell) MergeRight() int              { return c.SpanRight }
func (c *Cell) MergeDown() int               { return c.SpanDown }
func (c *Cell) Borders() *cellgrid.BorderSet { return c.Border }

// border returns the cell's border set, creating it on first use.
func (c *Cell) border() *cellgrid.BorderSet {
	if c.Border == nil {
		c.Border = &cellgrid.BorderSet{}
	}
	return c.Border
}

// Table is a dense rows×cols table. It implements cellgrid.Table.
type Table struct {
	rows, cols int
	cells      []*Cell
	rowKeep    []int
	colKeep    []int
}

// New returns a rows×cols table of 1×1 cells. Negative sizes are treated as 0.
func New(rows, cols int) *Table {
	rows, cols = max(rows, 0), max(cols, 0)
	t := &Table{
		rows:    rows,
		cols:    cols,
		cells:   make([]*Cell, rows*cols),
		rowKeep: make([]int, rows),
		colKeep: make([]int, cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t.cells[r*cols+c] = &Cell{Row: r, Col: c}
		}
	}
	return t
}

// FromValues builds a table from a rectangular grid of values. Ragged rows
// are padded with empty cells.
func FromValues(values [][]string) *Table {
	cols := 0
	for _, row := range values {
		cols = max(cols, len(row))
	}
	t := New(len(values), cols)
	for r, row := range values {
		for c, v := range row {
			t.At(r, c).Value = v
		}
	}
	return t
}

func (t *Table) RowCount() int { return t.rows }
func (t *Table) ColCount() int { return t.cols }

// Cell implements cellgrid.Table. It returns nil outside the table.
func (t *Table) Cell(row, col int) cellgrid.Cell {
	if c := t.At(row, col); c != nil {
		return c
	}
	return nil
}

// At returns the cell at (row,col), or nil outside the table.
func (t *Table) At(row, col int) *Cell {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return nil
	}
	return t.cells[row*t.cols+col]
}

func (t *Table) RowKeepWith(row int) int {
	if row < 0 || row >= t.rows {
		return 0
	}
	return t.rowKeep[row]
}

func (t *Table) ColumnKeepWith(col int) int {
	if col < 0 || col >= t.cols {
		return 0
	}
	return t.colKeep[col]
}

// Merge makes (row,col) span right extra columns and down extra rows.
// Spans are not validated here; cellgrid.New reports bad ones.
func (t *Table) Merge(row, col, right, down int) *Table {
	if c := t.At(row, col); c != nil {
		c.SpanRight, c.SpanDown = right, down
	}
	return t
}

// SetBorder sets the explicit border of one edge of (row,col).
func (t *Table) SetBorder(row, col int, side cellgrid.Side, b cellgrid.Border) *Table {
	if c := t.At(row, col); c != nil {
		c.border().SetEdge(side, &b)
	}
	return t
}

// SetDefaultBorder sets the set-level border that edges of (row,col) without
// an explicit border inherit.
func (t *Table) SetDefaultBorder(row, col int, b cellgrid.Border) *Table {
	if c := t.At(row, col); c != nil {
		c.border().Default = b
	}
	return t
}

// KeepRowWith keeps n rows after row on the same page.
func (t *Table) KeepRowWith(row, n int) *Table {
	if row >= 0 && row < t.rows {
		t.rowKeep[row] = n
	}
	return t
}

// KeepColumnWith keeps n columns after col on the same page.
func (t *Table) KeepColumnWith(col, n int) *Table {
	if col >= 0 && col < t.cols {
		t.colKeep[col] = n
	}
	return t
}
