package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellgrid"
)

// newSheet returns a dense rows×cols sheet of 20px rows (15pt).
func newSheet(rows, cols int) *RenderSheet {
	s := &RenderSheet{
		Name:      "Sheet1",
		ColWidths: make([]float64, cols),
		ColHidden: make([]bool, cols),
		Rows:      make([]RenderRow, rows),
	}
	for r := range s.Rows {
		s.Rows[r].HeightPx = 20
		s.Rows[r].Cells = make([]*RenderCell, cols)
		for c := range s.Rows[r].Cells {
			s.Rows[r].Cells[c] = &RenderCell{Ref: cellRef(r, c), ColSpan: 1, RowSpan: 1}
		}
	}
	return s
}

func mergeIR(s *RenderSheet, row, col, right, down int) *RenderCell {
	master := s.Rows[row].Cells[col]
	master.ColSpan, master.RowSpan = right+1, down+1
	for r := row; r <= row+down; r++ {
		for c := col; c <= col+right; c++ {
			if r != row || c != col {
				s.Rows[r].Cells[c].Covered = true
			}
		}
	}
	return master
}

func TestRenderSheetIsTable(t *testing.T) {
	s := newSheet(2, 3)
	master := mergeIR(s, 0, 0, 1, 0)

	g, err := cellgrid.New(s)
	require.NoError(t, err)
	assert.Equal(t, 2, g.RowCount())
	assert.Equal(t, 3, g.ColCount())

	covering, err := g.CoveringCell(s.Rows[0].Cells[1])
	require.NoError(t, err)
	assert.Same(t, master, covering)
	assert.Equal(t, []cellgrid.Unit{15, 15}, s.RowHeightsPt())
}

func TestBuildGrids(t *testing.T) {
	a, b := newSheet(1, 2), newSheet(3, 1)
	b.Name = "Sheet2"
	mergeIR(b, 0, 0, 0, 2)

	grids, err := BuildGrids(WorkbookModel{Sheets: []*RenderSheet{a, b}})
	require.NoError(t, err)
	require.Len(t, grids, 2)
	assert.Equal(t, 2, grids[0].ColCount())
	assert.Equal(t, 2, grids[1].LastConnectedRow(0))
}

func TestBuildGridsStrict(t *testing.T) {
	s := newSheet(2, 2)
	mergeIR(s, 0, 1, 0, 1)
	mergeIR(s, 1, 0, 1, 0)

	_, err := BuildGrids(WorkbookModel{Sheets: []*RenderSheet{s}}, cellgrid.WithStrictMerges())
	require.ErrorIs(t, err, cellgrid.ErrOverlappingMerge)
	assert.Contains(t, err.Error(), `sheet "Sheet1"`)
}

func TestRenderEmitsAnchorsOnly(t *testing.T) {
	s := newSheet(1, 2)
	master := mergeIR(s, 0, 0, 1, 0)
	master.Value = "a < b"

	out, err := RenderWorkbookHTML(WorkbookModel{Sheets: []*RenderSheet{s}})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "<td"))
	assert.Contains(t, out, `colspan="2"`)
	assert.Contains(t, out, "a &lt; b")
}

func TestRenderPagesKeepMergesTogether(t *testing.T) {
	old := PageHeightPt
	PageHeightPt = 30
	t.Cleanup(func() { PageHeightPt = old })

	s := newSheet(4, 1)
	mergeIR(s, 1, 0, 0, 1)

	out, err := RenderWorkbookHTML(WorkbookModel{Sheets: []*RenderSheet{s}})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<tbody"))

	second := out[strings.Index(out, `data-page="2"`):strings.Index(out, `data-page="3"`)]
	assert.Contains(t, second, `rowspan="2"`)
	assert.Equal(t, 2, strings.Count(second, "<tr"))
}

func TestRenderBorders(t *testing.T) {
	DebugHTML = true
	t.Cleanup(func() { DebugHTML = false })

	s := newSheet(1, 2)
	s.Rows[0].Cells[0].Border = &cellgrid.BorderSet{
		Right: &cellgrid.Border{Style: cellgrid.BorderStyleSingle, Width: 0.75, Color: "00FF00"},
	}
	s.Rows[0].Cells[1].Border = &cellgrid.BorderSet{
		Left: &cellgrid.Border{Style: cellgrid.BorderStyleDouble, Width: 2.25, Color: "0000FF"},
	}

	out, err := RenderWorkbookHTML(WorkbookModel{Sheets: []*RenderSheet{s}})
	require.NoError(t, err)
	// The wider left edge of B1 wins the shared edge.
	assert.Contains(t, out, "border-right:2.25pt double #0000FF;")
	assert.Contains(t, out, `data-border="0 2.25 0 0"`)
	assert.Contains(t, out, `data-border="0 0 0 2.25"`)
}

func TestBorderSet(t *testing.T) {
	assert.Nil(t, borderSet(nil))
	assert.Nil(t, borderSet(&sml.CT_Border{Left: &sml.CT_BorderPr{}}))

	rgb := "FF112233"
	bs := borderSet(&sml.CT_Border{
		Top:    &sml.CT_BorderPr{StyleAttr: sml.ST_BorderStyleMediumDashed, Color: &sml.CT_Color{RgbAttr: &rgb}},
		Bottom: &sml.CT_BorderPr{StyleAttr: sml.ST_BorderStyleNone},
	})
	require.NotNil(t, bs)
	assert.Equal(t, &cellgrid.Border{Style: cellgrid.BorderStyleDashLarge, Width: 1.5, Color: "112233"}, bs.Top)
	assert.Equal(t, cellgrid.Unit(0), bs.Bottom.EffectiveWidth())
	assert.Nil(t, bs.Left)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "FF0000", normalizeColor("FFFF0000"))
	assert.Equal(t, "ABCDEF", normalizeColor("#abcdef"))
}

// buildWorkbook returns an XLSX with A1:B1 merged and a thick red right
// border on B1.
func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	sheet.Cell("A1").SetString("merged")
	sheet.Cell("A2").SetString("below")
	sheet.AddMergedCells("A1", "B1")

	b := wb.StyleSheet.AddBorder()
	b.SetRight(sml.ST_BorderStyleThick, color.Red)
	cs := wb.StyleSheet.AddCellStyle()
	cs.SetBorder(b)
	sheet.Cell("B1").SetStyle(cs)

	var buf bytes.Buffer
	require.NoError(t, wb.Save(&buf))
	return buf.Bytes()
}

func TestParseWorkbookModel(t *testing.T) {
	data := buildWorkbook(t)
	m, err := ParseWorkbookModel(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, m.Sheets, 1)

	s := m.Sheets[0]
	require.Equal(t, 2, s.RowCount())
	require.Equal(t, 2, s.ColCount())
	a1, b1 := s.Rows[0].Cells[0], s.Rows[0].Cells[1]
	assert.Equal(t, "A1", a1.Ref)
	assert.Equal(t, "merged", a1.Value)
	assert.Equal(t, 2, a1.ColSpan)
	assert.True(t, b1.Covered)
	require.NotNil(t, b1.Border)
	assert.Equal(t, "FF0000", b1.Border.Right.Color)
	assert.Equal(t, "B2", s.Rows[1].Cells[1].Ref)

	grids, err := BuildGrids(m)
	require.NoError(t, err)
	eff, err := grids[0].EffectiveBorders(a1)
	require.NoError(t, err)
	require.NotNil(t, eff.Right)
	assert.Equal(t, cellgrid.Unit(2.25), eff.Right.EffectiveWidth())
	assert.Equal(t, "FF0000", eff.Right.Color)
}

func TestXLSXToHTML(t *testing.T) {
	data := buildWorkbook(t)
	out, err := XLSXToHTML(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Contains(t, out, `colspan="2"`)
	assert.Contains(t, out, "border-right:2.25pt solid #FF0000;")
	assert.Equal(t, 3, strings.Count(out, "<td"))
}
