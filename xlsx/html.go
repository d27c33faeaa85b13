package xlsx

import (
	"fmt"
	"html"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aerissecure/cellgrid"
	"github.com/aerissecure/cellgrid/internal/css"
)

// DebugHTML adds data attributes with resolved border widths to every cell.
var DebugHTML bool

// PageHeightPt is the printable height rows are grouped by. Each page becomes
// one <tbody>; merged blocks never straddle two.
var PageHeightPt cellgrid.Unit = 720

// XLSXToHTML converts an XLSX workbook to HTML.
func XLSXToHTML(r io.ReaderAt, size int64) (string, error) {
	m, err := ParseWorkbookModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderWorkbookHTML(m)
}

// BuildGrids builds the merge grid of every sheet concurrently. The result is
// indexed like m.Sheets.
func BuildGrids(m WorkbookModel, opts ...cellgrid.Option) ([]*cellgrid.Grid, error) {
	grids := make([]*cellgrid.Grid, len(m.Sheets))
	var g errgroup.Group
	for i, sheet := range m.Sheets {
		g.Go(func() error {
			grid, err := cellgrid.New(sheet, opts...)
			if err != nil {
				return fmt.Errorf("xlsx: sheet %q: %w", sheet.Name, err)
			}
			grids[i] = grid
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}

// mostCommon returns the most frequent key and its count. Ties go to the
// key seen first in order.
func mostCommon[K comparable](counts map[K]int, order []K) (K, int) {
	var val K
	n := 0
	for _, k := range order {
		if counts[k] > n {
			val, n = k, counts[k]
		}
	}
	return val, n
}

// counter counts values and remembers first-seen order so defaults are
// deterministic.
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func (c *counter[K]) add(k K) {
	if c.counts == nil {
		c.counts = make(map[K]int)
	}
	if c.counts[k] == 0 {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

// majority returns the most common value if more than half of total cells
// carry it, else the zero value.
func (c *counter[K]) majority(total int) K {
	val, n := mostCommon(c.counts, c.order)
	if n <= total/2 {
		var zero K
		return zero
	}
	return val
}

// RenderWorkbookHTML converts the IR into an HTML string.
func RenderWorkbookHTML(m WorkbookModel) (string, error) {
	grids, err := BuildGrids(m)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	// 1. Collect unique cell styles and count property values
	var fontFamilies, hAligns, vAligns, fontColors, bgColors counter[string]
	var fontSizes counter[float64]
	var wraps counter[bool]
	styleMap := make(map[CellStyle]string) // CellStyle -> class name
	styleList := make([]CellStyle, 0)      // To preserve order
	styledCells := 0

	for _, grid := range grids {
		for c := range grid.AllCells() {
			st := c.(*RenderCell).Style
			styledCells++
			if st.FontFamily != "" {
				fontFamilies.add(st.FontFamily)
			}
			if st.FontSizePt > 0 {
				fontSizes.add(st.FontSizePt)
			}
			if st.HorizontalAlign != "" {
				hAligns.add(st.HorizontalAlign)
			}
			if st.VerticalAlign != "" {
				vAligns.add(st.VerticalAlign)
			}
			if st.FontColor != "" {
				fontColors.add(st.FontColor)
			}
			if st.BackgroundColor != "" {
				bgColors.add(st.BackgroundColor)
			}
			wraps.add(st.WrapText)
			if _, exists := styleMap[st]; !exists {
				styleMap[st] = fmt.Sprintf("cellstyle%d", len(styleList)+1)
				styleList = append(styleList, st)
			}
		}
	}

	// 2. Compute defaults
	def := CellStyle{
		FontFamily:      fontFamilies.majority(styledCells),
		FontSizePt:      fontSizes.majority(styledCells),
		HorizontalAlign: hAligns.majority(styledCells),
		VerticalAlign:   vAligns.majority(styledCells),
		FontColor:       fontColors.majority(styledCells),
		BackgroundColor: bgColors.majority(styledCells),
	}
	// For wrap text a plain majority is enough; indent never gets a default.
	def.WrapText, _ = mostCommon(wraps.counts, wraps.order)

	// 3. Basic CSS
	builder.WriteString("<style>\n")
	builder.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; }\n")
	builder.WriteString(".table td { padding: 4px 8px; border: 1px solid #e0e0e0;")
	if decl := styleToCSSDiff(def, CellStyle{WrapText: true}); decl != "" {
		builder.WriteString(" " + decl)
	}
	builder.WriteString(" }\n")
	builder.WriteString(".sheet { margin-bottom: 2em; }\n")

	// 4. Render cell style classes (only properties that differ from default)
	for _, style := range styleList {
		if decl := styleToCSSDiff(style, def); decl != "" {
			builder.WriteString(fmt.Sprintf(".%s { %s }\n", styleMap[style], decl))
		}
	}
	builder.WriteString("</style>\n")

	for i, sheet := range m.Sheets {
		if err := renderSheetHTML(&builder, sheet, grids[i], styleMap); err != nil {
			return "", err
		}
	}
	return builder.String(), nil
}

func renderSheetHTML(builder *strings.Builder, sheet *RenderSheet, grid *cellgrid.Grid, styleMap map[CellStyle]string) error {
	totalPx := 0.0
	for _, w := range sheet.ColWidths {
		totalPx += w
	}
	builder.WriteString(fmt.Sprintf("<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sheet.Name)))
	builder.WriteString("<div style=\"width:100%;overflow-x:auto;\">\n")
	builder.WriteString(fmt.Sprintf("<table class=\"table\" style=\"width:%.0fpx;\">\n", totalPx))
	builder.WriteString("  <colgroup>\n")
	for i, w := range sheet.ColWidths {
		style := fmt.Sprintf(" style=\"width:%.0fpx;\"", w)
		if sheet.ColHidden[i] {
			style = " style=\"display:none;\""
		}
		builder.WriteString(fmt.Sprintf("    <col%s>\n", style))
	}
	builder.WriteString("  </colgroup>\n")

	var pages []cellgrid.RowRange
	if grid.RowCount() > 0 {
		var err error
		pages, err = grid.PageRows(0, sheet.RowHeightsPt(), PageHeightPt)
		if err != nil {
			return fmt.Errorf("xlsx: sheet %q: %w", sheet.Name, err)
		}
	}

	for p, page := range pages {
		builder.WriteString(fmt.Sprintf("  <tbody data-page=\"%d\">\n", p+1))
		for r := page.First; r <= page.Last; r++ {
			row := sheet.Rows[r]
			rowStyle := fmt.Sprintf("height:%.0fpx;", row.HeightPx)
			if row.Hidden {
				rowStyle += "display:none;"
			}
			builder.WriteString(fmt.Sprintf("    <tr style=\"%s\">\n", rowStyle))
			for c := range grid.RowCells(r) {
				if err := renderCellHTML(builder, grid, c.(*RenderCell), styleMap); err != nil {
					return err
				}
			}
			builder.WriteString("    </tr>\n")
		}
		builder.WriteString("  </tbody>\n")
	}
	builder.WriteString("</table>\n</div>\n</div>\n")
	return nil
}

func renderCellHTML(builder *strings.Builder, grid *cellgrid.Grid, cell *RenderCell, styleMap map[CellStyle]string) error {
	borders, err := grid.EffectiveBorders(cell)
	if err != nil {
		return fmt.Errorf("xlsx: cell %s: %w", cell.Ref, err)
	}

	attrs := ""
	if cell.ColSpan > 1 {
		attrs += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
	}
	if cell.RowSpan > 1 {
		attrs += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
	}
	if className := styleMap[cell.Style]; className != "" {
		attrs += fmt.Sprintf(" class=\"%s\"", className)
	}
	if bcss := css.Borders(borders); bcss != "" {
		attrs += fmt.Sprintf(" style=\"%s\"", bcss)
	}
	if DebugHTML {
		attrs += fmt.Sprintf(" data-border=\"%s\"", css.Widths(borders))
	}

	escaped := html.EscapeString(cell.Value)
	// Excel stores explicit line breaks as \n; preserve them in HTML
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	builder.WriteString(fmt.Sprintf("      <td data-cell=\"%s\"%s>%s</td>\n", cell.Ref, attrs, escaped))
	return nil
}

// styleToCSSDiff returns only the CSS properties from s that differ from def.
func styleToCSSDiff(s, def CellStyle) string {
	var b strings.Builder
	if s.FontFamily != "" && s.FontFamily != def.FontFamily {
		b.WriteString(fmt.Sprintf("font-family:'%s';", s.FontFamily))
	}
	if s.FontSizePt > 0 && s.FontSizePt != def.FontSizePt {
		b.WriteString(fmt.Sprintf("font-size:%.1fpt;", s.FontSizePt))
	}
	if s.FontColor != "" && s.FontColor != def.FontColor {
		b.WriteString(fmt.Sprintf("color:#%s;", s.FontColor))
	}
	if s.BackgroundColor != "" && s.BackgroundColor != def.BackgroundColor {
		b.WriteString(fmt.Sprintf("background-color:#%s;", s.BackgroundColor))
	}
	if s.HorizontalAlign != "" && s.HorizontalAlign != def.HorizontalAlign {
		switch s.HorizontalAlign {
		case "center", "centerContinuous", "distributed":
			b.WriteString("text-align:center;")
		case "right":
			b.WriteString("text-align:right;")
		case "justify":
			b.WriteString("text-align:justify;")
		default:
			b.WriteString("text-align:left;")
		}
	}
	if s.VerticalAlign != "" && s.VerticalAlign != def.VerticalAlign {
		switch s.VerticalAlign {
		case "top":
			b.WriteString("vertical-align:top;")
		case "middle":
			b.WriteString("vertical-align:middle;")
		default:
			b.WriteString("vertical-align:bottom;")
		}
	}
	// Only output wrap/indent if different from default
	if s.WrapText != def.WrapText {
		if s.WrapText {
			b.WriteString("white-space:normal;")
		} else {
			b.WriteString("white-space:nowrap;overflow:hidden;")
		}
	}
	if s.IndentPx > 0 && s.IndentPx != def.IndentPx {
		if s.HorizontalAlign == "right" {
			b.WriteString(fmt.Sprintf("padding-right:%.0fpx;", s.IndentPx))
		} else {
			b.WriteString(fmt.Sprintf("padding-left:%.0fpx;", s.IndentPx))
		}
	}
	return b.String()
}
