package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySearchTerm is returned by Lookup for a zero-length word.
	ErrEmptySearchTerm = errors.New("empty search term")

	// ErrWordNotFound is returned by Lookup when the word has no placement.
	// It is an expected outcome, not a failure of the engine.
	ErrWordNotFound = errors.New("word not found")
)

// Match is one placement of a word: its first letter sits at (Row, Col) and
// the remaining letters follow (DX, DY).
type Match struct {
	Row int `json:"row"`
	Col int `json:"col"`
	DX  int `json:"dx"`
	DY  int `json:"dy"`
}

// Direction returns the match's step vector.
func (m Match) Direction() Direction {
	return Direction{DX: m.DX, DY: m.DY}
}

// Cells returns the n [row, col] cells covered by a word of length n.
func (m Match) Cells(n int) [][2]int {
	cells := make([][2]int, n)
	for i := 0; i < n; i++ {
		cells[i] = [2]int{m.Row + i*m.DY, m.Col + i*m.DX}
	}
	return cells
}

func (m Match) String() string {
	return fmt.Sprintf("(%d,%d) %s", m.Row, m.Col, m.Direction())
}

// Result is the outcome of searching for one word bank entry.
type Result struct {
	Word    string  `json:"word"`
	Found   bool    `json:"found"`
	Matches []Match `json:"matches"`
}

// Search returns every placement of word in g. The boolean is false when
// the word is empty or has no placement; the slice is then nil.
//
// Seeds are visited in row-major order. From each seed the directions are
// tried in scanning order and only the first one that fits is kept.
func Search(g Grid, word string) ([]Match, bool) {
	w := []rune(word)
	if len(w) == 0 {
		return nil, false
	}

	var matches []Match
	for r := range g {
		for c := range g[r] {
			if g[r][c] != w[0] {
				continue
			}
			if d, ok := searchAt(g, r, c, w); ok {
				matches = append(matches, Match{Row: r, Col: c, DX: d.DX, DY: d.DY})
			}
		}
	}
	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}

// Lookup is Search with the not-found outcomes expressed as errors, for
// callers that report through an error channel.
func Lookup(g Grid, word string) ([]Match, error) {
	if word == "" {
		return nil, ErrEmptySearchTerm
	}
	matches, ok := Search(g, word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	return matches, nil
}

// SearchBank searches each entry of bank independently, keeping bank order.
func SearchBank(g Grid, bank WordBank) []Result {
	results := make([]Result, len(bank))
	for i, word := range bank {
		matches, ok := Search(g, word)
		results[i] = Result{Word: word, Found: ok, Matches: matches}
	}
	return results
}

func searchAt(g Grid, r, c int, w []rune) (Direction, bool) {
	for _, d := range scanOrder {
		if fits(g, r, c, w, d) {
			return d, true
		}
	}
	return Direction{}, false
}

// fits walks len(w) cells from (r, c) along d.
func fits(g Grid, r, c int, w []rune, d Direction) bool {
	for i := range w {
		ch, ok := g.At(r, c)
		if !ok || ch != w[i] {
			return false
		}
		r += d.DY
		c += d.DX
	}
	return true
}
