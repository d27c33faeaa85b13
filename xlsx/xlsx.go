package xlsx

import (
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/cellgrid"
)

// Note: Google Drive preview renders to canvas and also renders to <table>, but
// it hides table and maps between it and canvas for search. Gives them more
// accurate rendering.

// resolvedStyle is everything a cell style contributes to the IR.
type resolvedStyle struct {
	style  CellStyle
	border *cellgrid.BorderSet
}

// styleCache resolves cell style IDs once per workbook. Cells sharing a
// style share one BorderSet; cellgrid only ever reads it.
type styleCache struct {
	wb   *spreadsheet.Workbook
	byID map[uint32]resolvedStyle
}

func newStyleCache(wb *spreadsheet.Workbook) *styleCache {
	return &styleCache{wb: wb, byID: make(map[uint32]resolvedStyle)}
}

func (sc *styleCache) get(styleID uint32) resolvedStyle {
	if rs, ok := sc.byID[styleID]; ok {
		return rs
	}
	ss := sc.wb.StyleSheet
	var rs resolvedStyle
	if xfs := ss.X().CellXfs; xfs != nil && int(styleID) < len(xfs.Xf) {
		xf := xfs.Xf[styleID]
		rs.style = cellStyle(sc.wb, xf)
		rs.border = borderSet(GetBorderProps(ss, styleID))
	}
	sc.byID[styleID] = rs
	return rs
}

func cellStyle(wb *spreadsheet.Workbook, xf *sml.CT_Xf) CellStyle {
	var st CellStyle
	if font := fontOf(wb.StyleSheet, xf); font != nil {
		if len(font.Name) > 0 {
			st.FontFamily = font.Name[0].ValAttr
		}
		if len(font.Sz) > 0 {
			st.FontSizePt = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			st.FontColor = normalizeColor(*font.Color[0].RgbAttr)
		}
	}
	if fill := fillOf(wb.StyleSheet, xf); fill != nil && fill.PatternFill != nil && fill.PatternFill.FgColor != nil {
		fg := fill.PatternFill.FgColor
		if fg.RgbAttr != nil {
			st.BackgroundColor = normalizeColor(*fg.RgbAttr)
		} else if fg.ThemeAttr != nil {
			if hex, ok := ThemeColorToRGB(wb, int(*fg.ThemeAttr)); ok {
				st.BackgroundColor = hex
			}
		}
	}
	if xf.Alignment != nil {
		st.HorizontalAlign = xf.Alignment.HorizontalAttr.String()
		switch xf.Alignment.VerticalAttr.String() {
		case "top":
			st.VerticalAlign = "top"
		case "center":
			st.VerticalAlign = "middle"
		default:
			st.VerticalAlign = "bottom"
		}
		if xf.Alignment.WrapTextAttr != nil {
			st.WrapText = *xf.Alignment.WrapTextAttr
		}
		if xf.Alignment.IndentAttr != nil {
			st.IndentPx = float64(*xf.Alignment.IndentAttr) * 8.0
		}
	}
	return st
}

func fontOf(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Font {
	if ss.X().Fonts == nil || xf.FontIdAttr == nil || int(*xf.FontIdAttr) >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[*xf.FontIdAttr]
}

func fillOf(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Fill {
	if ss.X().Fills == nil || xf.FillIdAttr == nil || int(*xf.FillIdAttr) >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[*xf.FillIdAttr]
}

// GetBorderProps returns the border XML of a cell style, or nil.
func GetBorderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) || ss.X().Borders == nil {
		return nil
	}
	xf := ss.X().CellXfs.Xf[styleID]
	if xf.BorderIdAttr == nil || int(*xf.BorderIdAttr) >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[*xf.BorderIdAttr]
}

// borderSet converts Excel border XML. Excel has no set-level border, so
// only explicit edges are filled. Returns nil when no edge is styled.
func borderSet(b *sml.CT_Border) *cellgrid.BorderSet {
	if b == nil {
		return nil
	}
	bs := &cellgrid.BorderSet{
		Top:    borderEdge(b.Top),
		Left:   borderEdge(b.Left),
		Bottom: borderEdge(b.Bottom),
		Right:  borderEdge(b.Right),
	}
	if bs.Top == nil && bs.Left == nil && bs.Bottom == nil && bs.Right == nil {
		return nil
	}
	return bs
}

func borderEdge(p *sml.CT_BorderPr) *cellgrid.Border {
	if p == nil || p.StyleAttr == sml.ST_BorderStyleUnset {
		return nil
	}
	style, width := excelBorderStyle(p.StyleAttr)
	e := &cellgrid.Border{Style: style, Width: width}
	if p.Color != nil && p.Color.RgbAttr != nil {
		e.Color = normalizeColor(*p.Color.RgbAttr)
	}
	return e
}

// excelBorderStyle maps an Excel line style to a cellgrid style and its
// width in points as Excel draws it at 100% zoom.
func excelBorderStyle(s sml.ST_BorderStyle) (cellgrid.BorderStyle, cellgrid.Unit) {
	switch s {
	case sml.ST_BorderStyleNone:
		return cellgrid.BorderStyleNone, 0
	case sml.ST_BorderStyleHair:
		return cellgrid.BorderStyleDot, 0.25
	case sml.ST_BorderStyleThin:
		return cellgrid.BorderStyleSingle, 0.75
	case sml.ST_BorderStyleDotted:
		return cellgrid.BorderStyleDot, 0.75
	case sml.ST_BorderStyleDashed:
		return cellgrid.BorderStyleDashSmall, 0.75
	case sml.ST_BorderStyleDashDot:
		return cellgrid.BorderStyleDashDot, 0.75
	case sml.ST_BorderStyleDashDotDot:
		return cellgrid.BorderStyleDashDotDot, 0.75
	case sml.ST_BorderStyleMedium:
		return cellgrid.BorderStyleSingle, 1.5
	case sml.ST_BorderStyleMediumDashed:
		return cellgrid.BorderStyleDashLarge, 1.5
	case sml.ST_BorderStyleMediumDashDot, sml.ST_BorderStyleSlantDashDot:
		return cellgrid.BorderStyleDashDot, 1.5
	case sml.ST_BorderStyleMediumDashDotDot:
		return cellgrid.BorderStyleDashDotDot, 1.5
	case sml.ST_BorderStyleThick:
		return cellgrid.BorderStyleSingle, 2.25
	case sml.ST_BorderStyleDouble:
		return cellgrid.BorderStyleDouble, 2.25
	}
	return cellgrid.BorderStyleSingle, 0.75
}

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil || themes[0].ThemeElements.ClrScheme == nil {
		return "", false
	}
	cs := themes[0].ThemeElements.ClrScheme
	scheme := []*dml.CT_Color{
		cs.Dk1, cs.Lt1, cs.Dk2, cs.Lt2,
		cs.Accent1, cs.Accent2, cs.Accent3, cs.Accent4, cs.Accent5, cs.Accent6,
		cs.Hlink, cs.FolHlink,
	}
	if themeIdx < 0 || themeIdx >= len(scheme) || scheme[themeIdx] == nil {
		return "", false
	}
	clr := scheme[themeIdx]
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}
