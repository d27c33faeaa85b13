package cellgrid

import "fmt"

// PageRows splits rows fromRow..RowCount-1 into pages of at most pageHeight,
// given the height of every grid row. fromRow is first moved up to the top of
// any merge block it is part of, so layout resumed mid-table never starts
// inside a block. A page never ends inside a connectivity span (see
// LastConnectedRow); a span taller than pageHeight gets a page of its own.
//
// Returns ErrBadShape if len(heights) != RowCount, ErrOutOfRange for a
// fromRow outside the grid and ErrBadPageHeight if pageHeight <= 0.
func (g *Grid) PageRows(fromRow int, heights []Unit, pageHeight Unit) ([]RowRange, error) {
	if len(heights) != g.rows {
		return nil, fmt.Errorf("%w: %d heights for %d rows", ErrBadShape, len(heights), g.rows)
	}
	if g.rows > 0 && (fromRow < 0 || fromRow >= g.rows) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, fromRow, g.rows)
	}
	if pageHeight <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadPageHeight, float64(pageHeight))
	}

	var pages []RowRange
	for start := g.FirstRowMergedWithRow(fromRow); start < g.rows; {
		end := -1
		var used Unit
		for r := start; r < g.rows; {
			last := g.LastConnectedRow(r)
			var block Unit
			for i := r; i <= last; i++ {
				block += heights[i]
			}
			if end >= 0 && used+block > pageHeight {
				break
			}
			used += block
			end = last
			r = last + 1
		}
		pages = append(pages, RowRange{First: start, Last: end})
		start = end + 1
	}
	return pages, nil
}
