// Package css turns resolved cellgrid borders into inline CSS for the
// xlsx and docx HTML renderers.
package css

import (
	"fmt"
	"strings"

	"github.com/aerissecure/cellgrid"
)

// sideOrder is the CSS shorthand order.
var sideOrder = [4]cellgrid.Side{cellgrid.Top, cellgrid.Right, cellgrid.Bottom, cellgrid.Left}

// LineStyle maps a border style to a CSS border-style keyword.
func LineStyle(s cellgrid.BorderStyle) string {
	switch s {
	case cellgrid.BorderStyleNone:
		return "none"
	case cellgrid.BorderStyleDot:
		return "dotted"
	case cellgrid.BorderStyleDashSmall, cellgrid.BorderStyleDashLarge,
		cellgrid.BorderStyleDashDot, cellgrid.BorderStyleDashDotDot:
		return "dashed"
	case cellgrid.BorderStyleDouble:
		return "double"
	}
	return "solid"
}

// Borders returns per-side declarations for the edges present in bs. Absent
// edges produce nothing so the stylesheet default applies; an edge drawn at
// zero width becomes "none".
func Borders(bs *cellgrid.BorderSet) string {
	var b strings.Builder
	for _, side := range sideOrder {
		e := bs.Edge(side)
		if e == nil {
			continue
		}
		w := e.EffectiveWidth()
		if w == 0 {
			fmt.Fprintf(&b, "border-%s:none;", side)
			continue
		}
		color := e.Color
		if color == "" {
			color = "000000"
		}
		fmt.Fprintf(&b, "border-%s:%gpt %s #%s;", side, float64(w), LineStyle(e.Style), color)
	}
	return b.String()
}

// Widths formats the effective width of each side, top right bottom left,
// for debug attributes.
func Widths(bs *cellgrid.BorderSet) string {
	parts := make([]string, len(sideOrder))
	for i, side := range sideOrder {
		parts[i] = fmt.Sprintf("%g", float64(bs.EffectiveWidth(side)))
	}
	return strings.Join(parts, " ")
}
