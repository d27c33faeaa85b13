package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellgrid"
)

// Intermediate representation for XLSX.

// Pixel values are floats to allow fractional widths/heights if desired.

// CellStyle captures the limited set of Excel styles we currently support.
// Borders live on RenderCell so that CellStyle stays usable as a map key.
type CellStyle struct {
	FontFamily      string  // e.g. "Calibri"
	FontSizePt      float64 // original size in points
	FontColor       string  // "RRGGBB"
	BackgroundColor string  // "RRGGBB"
	HorizontalAlign string  // left|center|right|justify
	VerticalAlign   string  // top|middle|bottom
	WrapText        bool
	IndentPx        float64 // computed indent in pixels
}

func (s CellStyle) String() string {
	return fmt.Sprintf("FontFamily: %s, FontSizePt: %f, FontColor: %s, BackgroundColor: %s, HorizontalAlign: %s, VerticalAlign: %s, WrapText: %t, IndentPx: %f", s.FontFamily, s.FontSizePt, s.FontColor, s.BackgroundColor, s.HorizontalAlign, s.VerticalAlign, s.WrapText, s.IndentPx)
}

// RenderCell is the IR for a single grid position. Every position of a sheet
// has one, including blank positions and positions covered by a merge, so
// that a sheet can be handed to cellgrid as a dense table.
type RenderCell struct {
	Cell    spreadsheet.Cell    // zero value for positions absent from the file
	Ref     string              // e.g. "A1"
	Value   string              // already formatted value
	ColSpan int                 // 1 if not merged
	RowSpan int                 // 1 if not merged
	Covered bool                // merged into a cell above or to the left
	Style   CellStyle           // resolved style
	Border  *cellgrid.BorderSet // own borders from the cell style, nil if none
}

func (c *RenderCell) MergeRight() int              { return c.ColSpan - 1 }
func (c *RenderCell) MergeDown() int               { return c.RowSpan - 1 }
func (c *RenderCell) Borders() *cellgrid.BorderSet { return c.Border }

func (c RenderCell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %s, ColSpan: %d, RowSpan: %d, Covered: %t, Style: %s, Border: %s", c.Ref, c.Value, c.ColSpan, c.RowSpan, c.Covered, c.Style.String(), c.Border)
}

// RenderRow represents one logical row in a sheet.
type RenderRow struct {
	HeightPx float64 // resolved height in px
	Hidden   bool
	Cells    []*RenderCell // length == ColCount of parent sheet, never nil
}

func (r RenderRow) String() string {
	return fmt.Sprintf("HeightPx: %f, Hidden: %t, Cells: %d", r.HeightPx, r.Hidden, len(r.Cells))
}

// RenderSheet is the intermediate representation of a worksheet. It
// implements cellgrid.Table.
type RenderSheet struct {
	Name      string
	ColWidths []float64   // per column pixel widths, len == ColCount
	ColHidden []bool      // true if column hidden
	Rows      []RenderRow // in order
}

func (s *RenderSheet) String() string {
	return fmt.Sprintf("Name: %s, ColWidths: %v, ColHidden: %v, Rows: %d", s.Name, s.ColWidths, s.ColHidden, len(s.Rows))
}

func (s *RenderSheet) RowCount() int { return len(s.Rows) }
func (s *RenderSheet) ColCount() int { return len(s.ColWidths) }

func (s *RenderSheet) Cell(row, col int) cellgrid.Cell {
	return s.Rows[row].Cells[col]
}

// RowKeepWith is always 0: worksheets carry no keep-with-next setting.
func (s *RenderSheet) RowKeepWith(int) int { return 0 }

// ColumnKeepWith is always 0.
func (s *RenderSheet) ColumnKeepWith(int) int { return 0 }

// RowHeightsPt returns the row heights in points, the unit cellgrid
// paginates in.
func (s *RenderSheet) RowHeightsPt() []cellgrid.Unit {
	hs := make([]cellgrid.Unit, len(s.Rows))
	for i, r := range s.Rows {
		hs[i] = cellgrid.Unit(r.HeightPx * ptPerPx)
	}
	return hs
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []*RenderSheet
}
