// Package cellgrid resolves merged cells, shared borders and page
// connectivity for tables whose cells may span several rows and columns.
//
// What:
//
//   - New scans a read-only Table once and records, for every position, the
//     anchor (top-left cell) of the merge block covering it.
//   - Resolve, CoveringCell and SlotAt answer "who owns this position" in O(1).
//   - EffectiveBorders merges a block's own border set with the borders of
//     its last covered cells and of its neighbours, and memoizes the result.
//   - LastConnectedRow, LastConnectedColumn and FirstRowMergedWithRow compute
//     the rows/columns that must not be separated by a page break.
//   - Cells, AllCells and RowCells enumerate one anchor per block, row-major.
//   - PageRows splits rows into pages using the connectivity spans.
//
// Shared edges:
//
// Two adjacent blocks may both specify the edge they share. The wider border
// wins. On equal widths the block to the left or above provides the edge, so
// querying either side yields the same border and a renderer draws it once.
//
// Complexity:
//
//   - New:              O(R×C) time and memory.
//   - Resolve/SlotAt:   O(1).
//   - EffectiveBorders: O(1), computed once per block.
//   - LastConnected*:   O(R×C) worst case.
//
// Errors:
//
//   - ErrCellNotFound: the cell does not belong to this grid.
//   - ErrOutOfRange: a position outside the grid.
//   - ErrBadShape: negative dimensions or mismatched row heights.
//   - ErrNilCell: the table returned a nil cell.
//   - ErrSpanOutOfBounds: a merge span leaves the table.
//   - ErrOverlappingMerge: overlapping spans under WithStrictMerges.
//   - ErrBadPageHeight: non-positive page height for PageRows.
//
// The xlsx and docx subpackages adapt office documents to Table and render
// HTML previews through the engine; memtable provides an in-memory Table.
package cellgrid
