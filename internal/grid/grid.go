package grid

import (
	"strings"
	"unicode"
)

// Grid is a puzzle's character matrix, indexed [row][col].
type Grid [][]rune

// WordBank is the list of words to look for. Entries are expected to be
// normalized with NormalizeWord. Duplicates are allowed.
type WordBank []string

// Parse builds a Grid from text rows. Whitespace inside a row is dropped,
// letters are upper-cased and '1' is read as 'I'. Blank rows are skipped.
func Parse(lines []string) Grid {
	g := make(Grid, 0, len(lines))
	for _, line := range lines {
		row := normalizeRunes(line)
		if len(row) == 0 {
			continue
		}
		g = append(g, row)
	}
	return g
}

// NormalizeWord prepares a word for searching.
func NormalizeWord(word string) string {
	return string(normalizeRunes(word))
}

// NormalizeBank normalizes every entry and drops the ones that end up empty.
func NormalizeBank(words []string) WordBank {
	bank := make(WordBank, 0, len(words))
	for _, w := range words {
		if n := NormalizeWord(w); n != "" {
			bank = append(bank, n)
		}
	}
	return bank
}

func normalizeRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r == '1' {
			r = 'I'
		}
		out = append(out, unicode.ToUpper(r))
	}
	return out
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the rune at (row, col) and whether that cell exists.
func (g Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return 0, false
	}
	return g[row][col], true
}

// RaggedRows lists the indexes of rows whose length differs from row 0.
// An empty result means the grid is rectangular.
func (g Grid) RaggedRows() []int {
	var ragged []int
	for r := 1; r < len(g); r++ {
		if len(g[r]) != len(g[0]) {
			ragged = append(ragged, r)
		}
	}
	return ragged
}

// Lines renders the grid back into one string per row.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

// String renders the grid with rows separated by newlines.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]rune(nil), row...)
	}
	return c
}
