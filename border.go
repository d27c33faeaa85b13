package cellgrid

import "fmt"

// Unit is a length in points.
type Unit float64

// DefaultBorderWidth is the width of a border that is styled or coloured but
// carries no explicit width.
const DefaultBorderWidth Unit = 0.5

// BorderStyle is the line style of a border edge.
type BorderStyle int

const (
	BorderStyleUnset BorderStyle = iota
	BorderStyleNone
	BorderStyleSingle
	BorderStyleDot
	BorderStyleDashSmall
	BorderStyleDashLarge
	BorderStyleDashDot
	BorderStyleDashDotDot
	BorderStyleDouble
)

func (s BorderStyle) String() string {
	switch s {
	case BorderStyleUnset:
		return "unset"
	case BorderStyleNone:
		return "none"
	case BorderStyleSingle:
		return "single"
	case BorderStyleDot:
		return "dot"
	case BorderStyleDashSmall:
		return "dash-small"
	case BorderStyleDashLarge:
		return "dash-large"
	case BorderStyleDashDot:
		return "dash-dot"
	case BorderStyleDashDotDot:
		return "dash-dot-dot"
	case BorderStyleDouble:
		return "double"
	}
	return fmt.Sprintf("BorderStyle(%d)", int(s))
}

// Visibility is a tri-state visibility flag.
type Visibility int

const (
	VisibilityUnset Visibility = iota
	Visible
	Hidden
)

// Border describes one edge. The zero value has no property set.
type Border struct {
	Style      BorderStyle
	Width      Unit   // 0 means unset
	Color      string // "RRGGBB", empty if unset
	Visibility Visibility
}

// IsZero reports whether no property of b is set.
func (b Border) IsZero() bool {
	return b == Border{}
}

// EffectiveWidth returns the width the edge occupies when drawn. A hidden or
// style-none edge is 0; an edge that is styled, coloured or explicitly
// visible but has no width gets DefaultBorderWidth.
func (b Border) EffectiveWidth() Unit {
	if b.Visibility == Hidden || b.Style == BorderStyleNone {
		return 0
	}
	if b.Width > 0 {
		return b.Width
	}
	if b.Style != BorderStyleUnset || b.Color != "" || b.Visibility == Visible {
		return DefaultBorderWidth
	}
	return 0
}

func (b Border) String() string {
	return fmt.Sprintf("Style: %s, Width: %gpt, Color: %s, Visibility: %d", b.Style, float64(b.Width), b.Color, b.Visibility)
}

// Side names one of the four edges of a cell.
type Side int

const (
	Top Side = iota
	Left
	Bottom
	Right
)

// Sides lists the four edges in resolution order.
var Sides = [4]Side{Left, Right, Top, Bottom}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opposite returns the edge facing s on the neighbouring cell.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// BorderSet is the border specification of a cell. Default carries set-level
// properties that edges without an explicit Border inherit.
type BorderSet struct {
	Default Border
	Top     *Border
	Left    *Border
	Bottom  *Border
	Right   *Border
}

// Edge returns the explicit border on side, or nil.
func (bs *BorderSet) Edge(side Side) *Border {
	if bs == nil {
		return nil
	}
	switch side {
	case Top:
		return bs.Top
	case Left:
		return bs.Left
	case Bottom:
		return bs.Bottom
	case Right:
		return bs.Right
	}
	return nil
}

// SetEdge sets the explicit border on side. A nil b clears the edge.
func (bs *BorderSet) SetEdge(side Side, b *Border) {
	switch side {
	case Top:
		bs.Top = b
	case Left:
		bs.Left = b
	case Bottom:
		bs.Bottom = b
	case Right:
		bs.Right = b
	}
}

// Resolved returns a copy of the explicit border on side. Without one, a
// border built from Default is returned when Default has any property set,
// otherwise nil.
func (bs *BorderSet) Resolved(side Side) *Border {
	if bs == nil {
		return nil
	}
	if e := bs.Edge(side); e != nil {
		c := *e
		return &c
	}
	if bs.Default.IsZero() {
		return nil
	}
	d := bs.Default
	return &d
}

// EffectiveWidth returns the drawn width of side. Absent borders are 0.
func (bs *BorderSet) EffectiveWidth(side Side) Unit {
	b := bs.Resolved(side)
	if b == nil {
		return 0
	}
	return b.EffectiveWidth()
}

// Clone returns a deep copy of bs.
func (bs *BorderSet) Clone() *BorderSet {
	if bs == nil {
		return nil
	}
	c := &BorderSet{Default: bs.Default}
	for _, side := range Sides {
		if e := bs.Edge(side); e != nil {
			b := *e
			c.SetEdge(side, &b)
		}
	}
	return c
}

func (bs *BorderSet) String() string {
	if bs == nil {
		return "<nil>"
	}
	edge := func(side Side) string {
		if e := bs.Edge(side); e != nil {
			return e.String()
		}
		return "-"
	}
	return fmt.Sprintf("Top: [%s], Left: [%s], Bottom: [%s], Right: [%s]", edge(Top), edge(Left), edge(Bottom), edge(Right))
}
