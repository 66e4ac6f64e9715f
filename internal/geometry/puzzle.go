package geometry

import (
	"errors"
	"fmt"

	"github.com/ironsheep/wordsearch-mcp/internal/grid"
)

// ErrInvalidWordLength is returned when a segment is requested for a word
// with no letters.
var ErrInvalidWordLength = errors.New("word length must be at least 1")

// PuzzleGeometry holds the measurements needed to place grid cells on the
// display surface. It is derived state: rebuild it whenever the grid or the
// display size changes.
type PuzzleGeometry struct {
	// Selection is the rectangle the user drew, in display space.
	Selection Rect `json:"selection"`

	// Scanned is the bounding box of the recognized letters in image pixels,
	// relative to the top-left of the selection crop. OCR usually trims it a
	// little inside the selection.
	Scanned Rect `json:"scanned"`

	// Image is the source image size.
	Image Dimensions `json:"image"`

	// Display is the current display surface size.
	Display Dimensions `json:"display"`

	// Rows is the number of grid rows.
	Rows int `json:"rows"`
}

// Validate checks every quantity the mapper divides by.
func (g PuzzleGeometry) Validate() error {
	if err := validatePair(g.Image, g.Display); err != nil {
		return err
	}
	if g.Rows <= 0 {
		return fmt.Errorf("%w: puzzle has %d rows", ErrDegenerateGeometry, g.Rows)
	}
	return nil
}

// Unit returns the display-space size of one grid cell. Cells are treated
// as square, so the value is derived from the grid's height alone.
func (g PuzzleGeometry) Unit() (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	span, err := ImageToDisplay(Point{X: 0, Y: g.Scanned.Normalize().Height()}, g.Image, g.Display)
	if err != nil {
		return 0, err
	}
	return float64(span.Y) / float64(g.Rows), nil
}

// Origin returns the display-space center of cell [0][0].
func (g PuzzleGeometry) Origin() (FPoint, error) {
	unit, err := g.Unit()
	if err != nil {
		return FPoint{}, err
	}
	offset, err := ImageToDisplay(g.Scanned.Normalize().Min(), g.Image, g.Display)
	if err != nil {
		return FPoint{}, err
	}
	sel := g.Selection.Normalize()
	return FPoint{
		X: float64(sel.X1+offset.X) + unit/2,
		Y: float64(sel.Y1+offset.Y) + unit/2,
	}, nil
}

// Segment is a solution line in display space.
type Segment struct {
	Word  string     `json:"word"`
	Match grid.Match `json:"match"`
	Start FPoint     `json:"start"`
	End   FPoint     `json:"end"`
}

// LocateMatchSegment returns the display-space line for a match of a word
// with wordLength letters. The line starts at the center of the first cell
// and extends (wordLength - 0.5) cells along the match direction, so a
// one-letter word still draws a half-cell mark.
func LocateMatchSegment(m grid.Match, wordLength int, g PuzzleGeometry) (Segment, error) {
	if wordLength < 1 {
		return Segment{}, fmt.Errorf("%w: got %d", ErrInvalidWordLength, wordLength)
	}
	unit, err := g.Unit()
	if err != nil {
		return Segment{}, err
	}
	origin, err := g.Origin()
	if err != nil {
		return Segment{}, err
	}

	start := origin.Add(unit*float64(m.Col), unit*float64(m.Row))
	reach := unit * (float64(wordLength) - 0.5)
	end := start.Add(float64(m.DX)*reach, float64(m.DY)*reach)

	return Segment{Match: m, Start: start, End: end}, nil
}

// LocateSegments maps every match of word to a segment.
func LocateSegments(word string, matches []grid.Match, g PuzzleGeometry) ([]Segment, error) {
	n := len([]rune(word))
	segments := make([]Segment, 0, len(matches))
	for _, m := range matches {
		s, err := LocateMatchSegment(m, n, g)
		if err != nil {
			return nil, err
		}
		s.Word = word
		segments = append(segments, s)
	}
	return segments, nil
}
