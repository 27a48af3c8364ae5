package domain

import "strings"

// Grid is one worksheet snapshot: an ordered sequence of rows of cell text.
// Rows may be ragged; indexing out of bounds behaves as an empty cell.
type Grid [][]string

// Cell returns the trimmed text at (row, col), or "" when either index is
// outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// NumRows returns the number of rows in the snapshot.
func (g Grid) NumRows() int {
	return len(g)
}

// headerText normalizes a raw header cell the way the sheet publishes them:
// surrounding whitespace and stray double quotes removed.
func headerText(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, `"`, ""))
}
