package docx

import (
	"fmt"
	"time"

	"github.com/unidoc/unioffice/document"

	"github.com/aerissecure/cellgrid"
)

// Intermediate representation (IR) for DOCX documents.
//
// The purpose of these types is to provide a Go-native structure that captures
// just the information our converter cares about. They mirror the level of
// detail found in the XLSX IR so development against the two formats feels
// familiar.
//
// All colours are expressed as 6-character RGB hex strings without the leading
// "#" (e.g. "FF0000" for red).

// -----------------------------------------------------------------------------
// Document-level information
// -----------------------------------------------------------------------------

// DocProperties captures the common document properties.
type DocProperties struct {
	Title       string
	Author      string
	Description string
	Created     time.Time
	Modified    time.Time
}

func (p DocProperties) String() string {
	return fmt.Sprintf("Title: %q, Author: %q, Description: %q, Created: %s, Modified: %s",
		p.Title, p.Author, p.Description, p.Created.Format(time.RFC3339), p.Modified.Format(time.RFC3339))
}

// -----------------------------------------------------------------------------
// Run-level information
// -----------------------------------------------------------------------------

// RunStyle captures the character formatting for a run of text.
type RunStyle struct {
	FontFamily    string  // e.g. "Calibri"
	FontSizePt    float64 // size in points
	FontColor     string  // "RRGGBB"
	Bold          bool
	Italic        bool
	Underline     bool
	Strike        bool
	VerticalAlign string // "superscript" | "subscript" | "baseline"
}

func (s RunStyle) String() string {
	return fmt.Sprintf("FontFamily: %s, FontSizePt: %f, FontColor: %s, Bold: %t, Italic: %t, Underline: %t, Strike: %t, VerticalAlign: %s",
		s.FontFamily, s.FontSizePt, s.FontColor, s.Bold, s.Italic, s.Underline, s.Strike, s.VerticalAlign)
}

// RenderRun represents a single run (\<w:r>) within a paragraph.
type RenderRun struct {
	Run   document.Run // underlying run
	Text  string       // already expanded/decoded text for the run
	Style RunStyle     // resolved run style
}

func (r RenderRun) String() string {
	return fmt.Sprintf("Text: %q, Style: [%s]", r.Text, r.Style.String())
}

// -----------------------------------------------------------------------------
// Paragraph-level information
// -----------------------------------------------------------------------------

// ParagraphStyle captures paragraph-level formatting.
type ParagraphStyle struct {
	Alignment    string // "left" | "center" | "right" | "justify"
	HeadingLevel int    // 0 means normal paragraph, 1-6 for headings
	KeepNext     bool   // keep with the next paragraph on one page
}

func (s ParagraphStyle) String() string {
	return fmt.Sprintf("Alignment: %s, HeadingLevel: %d, KeepNext: %t", s.Alignment, s.HeadingLevel, s.KeepNext)
}

// RenderParagraph is the IR for a paragraph.
type RenderParagraph struct {
	Paragraph document.Paragraph // underlying paragraph
	Runs      []RenderRun        // constituent runs
	Style     ParagraphStyle     // resolved paragraph style
}

func (p RenderParagraph) String() string {
	return fmt.Sprintf("Runs: %d, Style: [%s]", len(p.Runs), p.Style.String())
}

// -----------------------------------------------------------------------------
// Table-level information
// -----------------------------------------------------------------------------

// TableCellStyle represents the non-border cell properties we render.
type TableCellStyle struct {
	BackgroundColor string // fill colour – "RRGGBB"
	VerticalAlign   string // "top" | "middle" | "bottom"
}

func (s TableCellStyle) String() string {
	return fmt.Sprintf("BackgroundColor: %s, VerticalAlign: %s", s.BackgroundColor, s.VerticalAlign)
}

// RenderTableCell is the IR for one grid position of a table. Positions a
// gridSpan stretches over hold placeholder cells that share the spanning
// cell's borders; vMerge continuation cells keep their own.
type RenderTableCell struct {
	Paragraphs []RenderParagraph   // content
	ColSpan    int                 // 1 if not horizontally merged
	RowSpan    int                 // 1 if not vertically merged
	Covered    bool                // merged into a cell above or to the left
	Style      TableCellStyle      // resolved style
	Border     *cellgrid.BorderSet // tcBorders, nil if none
}

func (c *RenderTableCell) MergeRight() int              { return c.ColSpan - 1 }
func (c *RenderTableCell) MergeDown() int               { return c.RowSpan - 1 }
func (c *RenderTableCell) Borders() *cellgrid.BorderSet { return c.Border }

func (c RenderTableCell) String() string {
	return fmt.Sprintf("Paragraphs: %d, ColSpan: %d, RowSpan: %d, Covered: %t, Style: [%s], Border: [%s]", len(c.Paragraphs), c.ColSpan, c.RowSpan, c.Covered, c.Style.String(), c.Border)
}

// RenderTableRow represents a row within a table.
type RenderTableRow struct {
	Cells    []*RenderTableCell // length equals Cols of parent table
	KeepWith int                // rows below that must stay on this row's page
}

func (r RenderTableRow) String() string {
	return fmt.Sprintf("Cells: %d, KeepWith: %d", len(r.Cells), r.KeepWith)
}

// RenderTable is the IR for a table. It implements cellgrid.Table.
type RenderTable struct {
	Cols int
	Rows []RenderTableRow // in order
}

func (t *RenderTable) String() string {
	return fmt.Sprintf("Rows: %d, Cols: %d", len(t.Rows), t.Cols)
}

func (t *RenderTable) RowCount() int { return len(t.Rows) }
func (t *RenderTable) ColCount() int { return t.Cols }

func (t *RenderTable) Cell(row, col int) cellgrid.Cell {
	return t.Rows[row].Cells[col]
}

func (t *RenderTable) RowKeepWith(row int) int { return t.Rows[row].KeepWith }

// ColumnKeepWith is always 0: Word has no column keep-together setting.
func (t *RenderTable) ColumnKeepWith(int) int { return 0 }

// -----------------------------------------------------------------------------
// Block ordering
// -----------------------------------------------------------------------------

// DocumentBlock represents a top-level block element in the DOCX body – either
// a paragraph or a table. Exactly one of Paragraph/Table will be non-nil.
type DocumentBlock struct {
	Paragraph *RenderParagraph
	Table     *RenderTable
}

// -----------------------------------------------------------------------------
// Top-level document model
// -----------------------------------------------------------------------------

type DocumentModel struct {
	Properties DocProperties

	// The document body in order. Tables also lists every table of Blocks.
	Blocks []DocumentBlock
	Tables []*RenderTable
}

func (d DocumentModel) String() string {
	return fmt.Sprintf("Blocks: %d, Tables: %d, Properties: [%s]", len(d.Blocks), len(d.Tables), d.Properties.String())
}
