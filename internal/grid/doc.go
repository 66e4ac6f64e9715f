// Package grid implements the word-search engine over a character grid.
//
// A Grid is a slice of rows, each a slice of runes. Row 0 is the top row and
// column 0 is the leftmost column. Search finds every placement of a word and
// reports it as a Match: the origin cell plus a unit direction vector.
//
// # Scanning Order
//
// Directions are tried from each seed cell in a fixed order:
//
//	(0,1) S, (0,-1) N, (1,0) E, (-1,0) W, (1,1) SE, (1,-1) NE, (-1,-1) NW, (-1,1) SW
//
// where the vector is (dx, dy), dx moves along columns and dy along rows.
// The first direction that succeeds from a seed cell is the only one reported
// for that cell. A word that fits two ways from the same origin is therefore
// reported once, in the earlier direction. Results from existing puzzles
// depend on this, so it is kept. The order above is the one those results
// were produced with; it is not compass order, and listing the directions
// any other way changes which placement a seed cell reports.
//
// # Ragged Grids
//
// Rows are not required to have equal length. Every access is bounds-checked
// against the row being read, so a short row simply fails to match.
//
// # Normalization
//
// The engine compares runes exactly. Callers normalize input first: Parse
// and NormalizeWord upper-case text and map the OCR confusion '1' to 'I'.
package grid
