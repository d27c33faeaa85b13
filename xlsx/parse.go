package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/cellgrid"
)

const (
	pxPerPt = 1.333
	ptPerPx = 0.75

	defaultRowHeightPt = 15.0 // Excel default
	defaultColWidthCh  = 8.43
	pxPerCh            = 8.3
)

type mergeRange struct {
	fromRow, fromCol int
	toRow, toCol     int
}

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate
// representation. Each sheet is dense: every position up to the last used
// row and column, merges included, holds a RenderCell.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, fmt.Errorf("xlsx: read workbook: %w", err)
	}

	styles := newStyleCache(wb)
	var model WorkbookModel
	for _, sheet := range wb.Sheets() {
		model.Sheets = append(model.Sheets, parseSheet(sheet, styles))
	}
	return model, nil
}

func parseSheet(sheet spreadsheet.Sheet, styles *styleCache) *RenderSheet {
	log := cellgrid.Logger()
	merges := sheetMerges(sheet)

	// ---- find extent ----
	maxRows, maxCols := 0, 0
	for _, row := range sheet.Rows() {
		maxRows = max(maxRows, int(row.RowNumber()))
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			maxCols = max(maxCols, int(reference.ColumnToIndex(colName))+1)
		}
	}
	for _, mr := range merges {
		maxRows = max(maxRows, mr.toRow+1)
		maxCols = max(maxCols, mr.toCol+1)
	}

	// Column metadata
	colWidths := make([]float64, maxCols)
	colHidden := make([]bool, maxCols)
	for c := 0; c < maxCols; c++ {
		colObj := sheet.Column(uint32(c + 1))
		if colObj.X().CustomWidthAttr != nil && *colObj.X().CustomWidthAttr && colObj.X().WidthAttr != nil {
			colWidths[c] = *colObj.X().WidthAttr * pxPerCh
		} else {
			colWidths[c] = defaultColWidthCh * pxPerCh
		}
		if colObj.X().HiddenAttr != nil {
			colHidden[c] = *colObj.X().HiddenAttr
		}
	}

	rs := &RenderSheet{
		Name:      sheet.Name(),
		ColWidths: colWidths,
		ColHidden: colHidden,
		Rows:      make([]RenderRow, maxRows),
	}
	for r := range rs.Rows {
		rr := &rs.Rows[r]
		rr.HeightPx = defaultRowHeightPt * pxPerPt
		rr.Cells = make([]*RenderCell, maxCols)
		for c := range rr.Cells {
			rr.Cells[c] = &RenderCell{
				Ref:     cellRef(r, c),
				ColSpan: 1,
				RowSpan: 1,
			}
		}
	}

	// --- fill cells ---
	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		rr := &rs.Rows[rowIdx]
		rr.Hidden = row.IsHidden()
		if row.X().CustomHeightAttr != nil && *row.X().CustomHeightAttr && row.X().HtAttr != nil {
			rr.HeightPx = *row.X().HtAttr * pxPerPt
		}

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				log.Debug("xlsx: skipping cell without column", "sheet", rs.Name, "row", rowIdx+1, "err", err)
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			rc := rr.Cells[colIdx]
			rc.Cell = cell
			rc.Value = cell.GetFormattedValue()
			if cell.X().SAttr != nil {
				st := styles.get(*cell.X().SAttr)
				rc.Style = st.style
				rc.Border = st.border
			}
		}
	}

	// --- apply merges ---
	for _, mr := range merges {
		master := rs.Rows[mr.fromRow].Cells[mr.fromCol]
		if master.Covered {
			log.Warn("xlsx: merge anchored inside another merge", "sheet", rs.Name, "ref", master.Ref)
			continue
		}
		master.RowSpan = mr.toRow - mr.fromRow + 1
		master.ColSpan = mr.toCol - mr.fromCol + 1
		for r := mr.fromRow; r <= mr.toRow; r++ {
			for c := mr.fromCol; c <= mr.toCol; c++ {
				if r != mr.fromRow || c != mr.fromCol {
					rs.Rows[r].Cells[c].Covered = true
				}
			}
		}
	}

	log.Debug("xlsx: parsed sheet", "sheet", rs.Name, "rows", maxRows, "cols", maxCols, "merges", len(merges))
	return rs
}

func sheetMerges(sheet spreadsheet.Sheet) []mergeRange {
	if sheet.X().MergeCells == nil {
		return nil
	}
	var out []mergeRange
	for _, mc := range sheet.X().MergeCells.MergeCell {
		from, to, err := reference.ParseRangeReference(mc.RefAttr)
		if err != nil {
			cellgrid.Logger().Debug("xlsx: bad merge reference", "ref", mc.RefAttr, "err", err)
			continue
		}
		out = append(out, mergeRange{
			fromRow: int(from.RowIdx - 1),
			fromCol: int(from.ColumnIdx),
			toRow:   int(to.RowIdx - 1),
			toCol:   int(to.ColumnIdx),
		})
	}
	return out
}

func cellRef(row, col int) string {
	return fmt.Sprintf("%s%d", reference.IndexToColumn(uint32(col)), row+1)
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
