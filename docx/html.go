package docx

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/aerissecure/cellgrid"
	"github.com/aerissecure/cellgrid/internal/css"
)

// DebugHTML controls whether extra data attributes with raw style info are included in the rendered HTML output.
var DebugHTML bool

var (
	fontFamilyUnsafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)
	hexColorRe         = regexp.MustCompile(`^[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)
)

// colorDecl returns "prop:#RRGGBB;" for a valid 3- or 6-digit hex colour and
// nothing otherwise, so document values never reach the style attribute raw.
func colorDecl(prop, hex string) string {
	if hex == "" || !hexColorRe.MatchString(hex) {
		return ""
	}
	return prop + ":#" + hex + ";"
}

// -----------------------------------------------------------------------------
// Run and paragraph styles
// -----------------------------------------------------------------------------

func runStyleToCSS(s RunStyle) string {
	var decls []string
	if family := fontFamilyUnsafeRe.ReplaceAllString(s.FontFamily, ""); family != "" {
		decls = append(decls, fmt.Sprintf("font-family:'%s';", family))
	}
	if s.FontSizePt > 0 {
		decls = append(decls, fmt.Sprintf("font-size:%.1fpt;", s.FontSizePt))
	}
	decls = append(decls, colorDecl("color", s.FontColor))
	if s.Bold {
		decls = append(decls, "font-weight:bold;")
	}
	if s.Italic {
		decls = append(decls, "font-style:italic;")
	}
	var deco []string
	if s.Underline {
		deco = append(deco, "underline")
	}
	if s.Strike {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration:"+strings.Join(deco, " ")+";")
	}
	switch s.VerticalAlign {
	case "superscript":
		decls = append(decls, "vertical-align:super;")
	case "subscript":
		decls = append(decls, "vertical-align:sub;")
	}
	return strings.Join(decls, "")
}

func paragraphStyleToCSS(s ParagraphStyle) string {
	switch s.Alignment {
	case "center", "right", "justify":
		return "text-align:" + s.Alignment + ";"
	}
	return ""
}

func cellStyleToCSS(s TableCellStyle) string {
	decl := colorDecl("background-color", s.BackgroundColor)
	switch s.VerticalAlign {
	case "top", "middle", "bottom":
		decl += "vertical-align:" + s.VerticalAlign + ";"
	}
	return decl
}

// -----------------------------------------------------------------------------
// Paragraph & Run rendering
// -----------------------------------------------------------------------------

func renderRunsHTML(runs []RenderRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString("<span")
		if style := runStyleToCSS(run.Style); style != "" {
			fmt.Fprintf(&b, " style=\"%s\"", style)
		}
		if DebugHTML {
			fmt.Fprintf(&b, " data-run-style=\"%s\"", html.EscapeString(run.Style.String()))
		}
		b.WriteByte('>')
		b.WriteString(strings.ReplaceAll(html.EscapeString(run.Text), "\n", "<br>"))
		b.WriteString("</span>")
	}
	return b.String()
}

// renderParagraphHTML emits a heading or paragraph element. Under DebugHTML a
// keepNext paragraph is marked with data-keep-next, the flag that makes its
// table row keep with the next one.
func renderParagraphHTML(p RenderParagraph) string {
	tag := "p"
	if n := p.Style.HeadingLevel; n >= 1 && n <= 6 {
		tag = "h" + strconv.Itoa(n)
	}
	var attrs strings.Builder
	if style := paragraphStyleToCSS(p.Style); style != "" {
		fmt.Fprintf(&attrs, " style=\"%s\"", style)
	}
	if DebugHTML {
		fmt.Fprintf(&attrs, " data-para-style=\"%s\"", html.EscapeString(p.Style.String()))
		if p.Style.KeepNext {
			attrs.WriteString(" data-keep-next")
		}
	}
	return fmt.Sprintf("<%s%s>%s</%s>\n", tag, attrs.String(), renderRunsHTML(p.Runs), tag)
}

// -----------------------------------------------------------------------------
// Table rendering
// -----------------------------------------------------------------------------

// renderTableHTML emits one <td> per merge block with borders resolved
// against the neighbouring cells.
func renderTableHTML(t *RenderTable) (string, error) {
	grid, err := cellgrid.New(t)
	if err != nil {
		return "", fmt.Errorf("docx: table: %w", err)
	}

	var b strings.Builder
	b.WriteString("<table style=\"border-collapse:collapse;\">\n")
	for r := 0; r < grid.RowCount(); r++ {
		debugAttr := ""
		if DebugHTML {
			debugAttr = fmt.Sprintf(" data-block=\"%d-%d\"", grid.FirstRowMergedWithRow(r), grid.LastConnectedRow(r))
		}
		b.WriteString(fmt.Sprintf("  <tr%s>", debugAttr))
		for c := range grid.RowCells(r) {
			cell := c.(*RenderTableCell)
			borders, err := grid.EffectiveBorders(cell)
			if err != nil {
				return "", fmt.Errorf("docx: row %d: %w", r, err)
			}

			var cellHTML string
			if len(cell.Paragraphs) == 0 {
				cellHTML = "&nbsp;"
			} else {
				var paraB strings.Builder
				for _, p := range cell.Paragraphs {
					paraB.WriteString(renderParagraphHTML(p))
				}
				cellHTML = paraB.String()
			}

			style := cellStyleToCSS(cell.Style) + css.Borders(borders)
			spanAttr := ""
			if cell.ColSpan > 1 {
				spanAttr += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
			}
			if cell.RowSpan > 1 {
				spanAttr += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
			}
			cellDebug := ""
			if DebugHTML {
				cellDebug = fmt.Sprintf(" data-cell-style=\"%s\" data-border=\"%s\"", html.EscapeString(cell.Style.String()), css.Widths(borders))
			}
			b.WriteString(fmt.Sprintf("    <td%s style=\"%spadding:4px;\"%s>%s</td>", spanAttr, style, cellDebug, cellHTML))
		}
		b.WriteString("  </tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String(), nil
}

// -----------------------------------------------------------------------------
// Top-level rendering entry point
// -----------------------------------------------------------------------------

// RenderDocumentHTML converts the DocumentModel into an HTML string.
func RenderDocumentHTML(m DocumentModel) (string, error) {
	var b strings.Builder
	b.WriteString("<html><body>\n")

	for _, blk := range m.Blocks {
		if blk.Paragraph != nil {
			b.WriteString(renderParagraphHTML(*blk.Paragraph))
		} else if blk.Table != nil {
			tbl, err := renderTableHTML(blk.Table)
			if err != nil {
				return "", err
			}
			b.WriteString(tbl)
		}
	}

	b.WriteString("</body></html>\n")
	return b.String(), nil
}

// DOCXToHTML converts a DOCX document to HTML.
func DOCXToHTML(r io.ReaderAt, size int64) (string, error) {
	ir, err := ParseDocumentModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderDocumentHTML(ir)
}
