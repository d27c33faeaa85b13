package docx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/aerissecure/cellgrid"
)

// ParseDocumentModel reads a DOCX document from the provided reader and size
// and builds a DocumentModel intermediate representation. Tables are made
// dense: every grid position holds a cell, with gridSpan and vMerge turned
// into ColSpan and RowSpan.
func ParseDocumentModel(r io.ReaderAt, size int64) (DocumentModel, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return DocumentModel{}, fmt.Errorf("docx: read document: %w", err)
	}

	mdl := DocumentModel{
		Properties: DocProperties{
			Title:       doc.CoreProperties.Title(),
			Author:      doc.CoreProperties.Author(),
			Description: doc.CoreProperties.Description(),
			Created:     doc.CoreProperties.Created(),
			Modified:    doc.CoreProperties.Modified(),
		},
	}

	// ---- Build lookup maps from underlying XML ptr -> high-level wrapper ----
	pMap := make(map[*wml.CT_P]document.Paragraph)
	for _, p := range doc.Paragraphs() {
		pMap[p.X()] = p
	}

	tMap := make(map[*wml.CT_Tbl]document.Table)
	for _, tbl := range doc.Tables() {
		tMap[tbl.X()] = tbl
	}

	// ---- Walk body elements in order ----
	body := doc.X().Body
	if body == nil {
		// Empty document
		return mdl, nil
	}

	for _, bl := range body.EG_BlockLevelElts {
		for _, c := range bl.EG_ContentBlockContent {
			// Paragraphs
			for _, cp := range c.P {
				if par, ok := pMap[cp]; ok {
					rp := convertParagraph(par)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Paragraph: &rp})
				}
			}
			// Tables
			for _, ct := range c.Tbl {
				if tbl, ok := tMap[ct]; ok {
					rt := convertTable(tbl)
					mdl.Tables = append(mdl.Tables, rt)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Table: rt})
				}
			}
		}
	}

	return mdl, nil
}

// convertRun builds a RenderRun from a unioffice Run.
func convertRun(r document.Run) RenderRun {
	rr := RenderRun{Run: r, Text: r.Text()}
	rpr := r.X().RPr
	if rpr == nil {
		return rr
	}
	st := &rr.Style
	st.Bold = rpr.B != nil
	st.Italic = rpr.I != nil
	st.Strike = rpr.Strike != nil
	st.Underline = rpr.U != nil && rpr.U.ValAttr != wml.ST_UnderlineNone
	if rpr.RFonts != nil && rpr.RFonts.AsciiAttr != nil {
		st.FontFamily = *rpr.RFonts.AsciiAttr
	}
	if rpr.Sz != nil && rpr.Sz.ValAttr.ST_UnsignedDecimalNumber != nil {
		st.FontSizePt = float64(*rpr.Sz.ValAttr.ST_UnsignedDecimalNumber) / 2
	}
	if rpr.Color != nil {
		st.FontColor = hexColor(rpr.Color.ValAttr)
	}
	if rpr.VertAlign != nil {
		st.VerticalAlign = rpr.VertAlign.ValAttr.String()
	}
	return rr
}

// convertParagraph converts a unioffice Paragraph into the RenderParagraph IR.
func convertParagraph(p document.Paragraph) RenderParagraph {
	rp := RenderParagraph{Paragraph: p}

	for _, run := range p.Runs() {
		rp.Runs = append(rp.Runs, convertRun(run))
	}

	if level, ok := strings.CutPrefix(p.Style(), "Heading"); ok {
		if n, err := strconv.Atoi(level); err == nil && n >= 1 && n <= 6 {
			rp.Style.HeadingLevel = n
		}
	}
	if ppr := p.X().PPr; ppr != nil {
		rp.Style.KeepNext = ppr.KeepNext != nil
		if ppr.Jc != nil {
			switch ppr.Jc.ValAttr {
			case wml.ST_JcCenter:
				rp.Style.Alignment = "center"
			case wml.ST_JcRight, wml.ST_JcEnd:
				rp.Style.Alignment = "right"
			case wml.ST_JcBoth, wml.ST_JcDistribute:
				rp.Style.Alignment = "justify"
			}
		}
	}
	return rp
}

// rawCell is a <w:tc> placed on the table grid.
type rawCell struct {
	cell  *RenderTableCell
	col   int
	vCont bool // vMerge continuation
}

// convertTable converts a unioffice Table into the dense RenderTable IR.
func convertTable(t document.Table) *RenderTable {
	log := cellgrid.Logger()
	rt := &RenderTable{}

	// ---- place cells on the grid ----
	var placed [][]rawCell
	for _, row := range t.Rows() {
		var cells []rawCell
		col := 0
		for _, cell := range row.Cells() {
			rc, cont := convertCell(cell)
			cells = append(cells, rawCell{cell: rc, col: col, vCont: cont})
			col += rc.ColSpan
		}
		rt.Cols = max(rt.Cols, col)
		placed = append(placed, cells)
	}

	rt.Rows = make([]RenderTableRow, len(placed))
	for r, cells := range placed {
		tr := &rt.Rows[r]
		tr.Cells = make([]*RenderTableCell, rt.Cols)
		for _, pc := range cells {
			tr.Cells[pc.col] = pc.cell
			for k := 1; k < pc.cell.ColSpan; k++ {
				tr.Cells[pc.col+k] = &RenderTableCell{ColSpan: 1, RowSpan: 1, Covered: true, Border: pc.cell.Border}
			}
			if keepsNext(pc.cell) {
				tr.KeepWith = 1
			}
		}
		// rows shorter than the grid are padded with empty cells
		for c, cell := range tr.Cells {
			if cell == nil {
				tr.Cells[c] = &RenderTableCell{ColSpan: 1, RowSpan: 1}
			}
		}
	}

	// ---- vertical merges ----
	open := make(map[int]*RenderTableCell) // grid column -> restart cell
	for r, cells := range placed {
		next := make(map[int]*RenderTableCell)
		for _, pc := range cells {
			if !pc.vCont {
				if pc.cell.RowSpan == 0 {
					pc.cell.RowSpan = 1
					next[pc.col] = pc.cell
				}
				continue
			}
			owner := open[pc.col]
			if owner == nil || owner.ColSpan != pc.cell.ColSpan {
				log.Debug("docx: vMerge continuation without a matching restart", "row", r, "col", pc.col)
				next[pc.col] = pc.cell
				continue
			}
			owner.RowSpan++
			pc.cell.Covered = true
			next[pc.col] = owner
		}
		open = next
	}

	log.Debug("docx: parsed table", "rows", len(rt.Rows), "cols", rt.Cols)
	return rt
}

// convertCell converts one <w:tc>. A vMerge restart gets RowSpan 0 so the
// merge pass can tell it from a plain cell; cont reports a continuation.
func convertCell(cell document.Cell) (rc *RenderTableCell, cont bool) {
	rc = &RenderTableCell{ColSpan: 1, RowSpan: 1}
	for _, p := range cell.Paragraphs() {
		rc.Paragraphs = append(rc.Paragraphs, convertParagraph(p))
	}

	tcPr := cell.X().TcPr
	if tcPr == nil {
		return rc, false
	}
	if tcPr.GridSpan != nil && tcPr.GridSpan.ValAttr > 1 {
		rc.ColSpan = int(tcPr.GridSpan.ValAttr)
	}
	if tcPr.VMerge != nil {
		if tcPr.VMerge.ValAttr == wml.ST_MergeRestart {
			rc.RowSpan = 0
		} else {
			cont = true
		}
	}
	if tcPr.Shd != nil && tcPr.Shd.FillAttr != nil {
		rc.Style.BackgroundColor = hexColor(*tcPr.Shd.FillAttr)
	}
	if tcPr.VAlign != nil {
		switch tcPr.VAlign.ValAttr {
		case wml.ST_VerticalJcTop:
			rc.Style.VerticalAlign = "top"
		case wml.ST_VerticalJcCenter:
			rc.Style.VerticalAlign = "middle"
		case wml.ST_VerticalJcBottom:
			rc.Style.VerticalAlign = "bottom"
		}
	}
	rc.Border = tcBorders(tcPr.TcBorders)
	return rc, cont
}

func keepsNext(c *RenderTableCell) bool {
	for _, p := range c.Paragraphs {
		if p.Style.KeepNext {
			return true
		}
	}
	return false
}

// tcBorders converts <w:tcBorders>. Returns nil when no edge is set.
func tcBorders(b *wml.CT_TcBorders) *cellgrid.BorderSet {
	if b == nil {
		return nil
	}
	left, right := b.Left, b.Right
	if left == nil {
		left = b.Start
	}
	if right == nil {
		right = b.End
	}
	bs := &cellgrid.BorderSet{
		Top:    borderEdge(b.Top),
		Left:   borderEdge(left),
		Bottom: borderEdge(b.Bottom),
		Right:  borderEdge(right),
	}
	if bs.Top == nil && bs.Left == nil && bs.Bottom == nil && bs.Right == nil {
		return nil
	}
	return bs
}

// borderEdge converts one <w:top>/<w:left>/... border. sz is in eighths of a
// point.
func borderEdge(b *wml.CT_Border) *cellgrid.Border {
	if b == nil || b.ValAttr == wml.ST_BorderUnset {
		return nil
	}
	e := &cellgrid.Border{Style: wordBorderStyle(b.ValAttr)}
	if b.SzAttr != nil {
		e.Width = cellgrid.Unit(*b.SzAttr) / 8
	}
	if b.ColorAttr != nil {
		e.Color = hexColor(*b.ColorAttr)
	}
	return e
}

func wordBorderStyle(s wml.ST_Border) cellgrid.BorderStyle {
	switch s {
	case wml.ST_BorderNil, wml.ST_BorderNone:
		return cellgrid.BorderStyleNone
	case wml.ST_BorderDotted:
		return cellgrid.BorderStyleDot
	case wml.ST_BorderDashSmallGap:
		return cellgrid.BorderStyleDashSmall
	case wml.ST_BorderDashed:
		return cellgrid.BorderStyleDashLarge
	case wml.ST_BorderDotDash:
		return cellgrid.BorderStyleDashDot
	case wml.ST_BorderDotDotDash:
		return cellgrid.BorderStyleDashDotDot
	case wml.ST_BorderDouble, wml.ST_BorderTriple:
		return cellgrid.BorderStyleDouble
	}
	return cellgrid.BorderStyleSingle
}

// hexColor returns the RGB value of a Word colour, or "" for auto.
func hexColor(c wml.ST_HexColor) string {
	if c.ST_HexColorRGB == nil {
		return ""
	}
	return strings.ToUpper(*c.ST_HexColorRGB)
}
