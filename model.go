package cellgrid

// Table is the read-only source the engine is built from. Every position in
// [0,RowCount) × [0,ColCount) must return a cell, including positions that a
// merge originating above or to the left covers.
type Table interface {
	RowCount() int
	ColCount() int
	Cell(row, col int) Cell
	// RowKeepWith returns how many following rows must stay on the same page
	// as row.
	RowKeepWith(row int) int
	// ColumnKeepWith returns how many following columns must stay on the same
	// page as col.
	ColumnKeepWith(col int) int
}

// Cell is a single table cell. Cell values are used as identities in the
// owner index, so implementations must be comparable; pointer types are the
// norm.
type Cell interface {
	MergeRight() int     // extra columns spanned, >= 0
	MergeDown() int      // extra rows spanned, >= 0
	Borders() *BorderSet // own border set, nil if none
}

// Slot is a read-only view of one grid position.
type Slot struct {
	Row, Col             int  // position of this slot
	AnchorRow, AnchorCol int  // top-left position of the owning merge block
	Secondary            bool // covered by a merge but not its anchor
	Cell                 Cell // raw cell the table holds at Row, Col
	Anchor               Cell // cell that visually owns this position
}

// RowRange is an inclusive range of rows.
type RowRange struct {
	First, Last int
}
