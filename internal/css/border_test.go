package css

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerissecure/cellgrid"
)

func TestBorders(t *testing.T) {
	assert.Empty(t, Borders(nil))

	bs := &cellgrid.BorderSet{
		Top:    &cellgrid.Border{Style: cellgrid.BorderStyleDot, Width: 1, Color: "00FF00"},
		Right:  &cellgrid.Border{Visibility: cellgrid.Hidden, Width: 3},
		Bottom: &cellgrid.Border{Style: cellgrid.BorderStyleDashDot},
	}
	assert.Equal(t, "border-top:1pt dotted #00FF00;border-right:none;border-bottom:0.5pt dashed #000000;", Borders(bs))
	assert.Equal(t, "1 0 0.5 0", Widths(bs))
}

func TestLineStyle(t *testing.T) {
	assert.Equal(t, "solid", LineStyle(cellgrid.BorderStyleUnset))
	assert.Equal(t, "double", LineStyle(cellgrid.BorderStyleDouble))
	assert.Equal(t, "none", LineStyle(cellgrid.BorderStyleNone))
}
