package ocr

import (
	"sort"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
)

// Symbol is one recognized character with its box in crop coordinates.
type Symbol struct {
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"`
	Bounds     geometry.Rect `json:"bounds"`
}

func (s Symbol) centerY() int {
	return (s.Bounds.Y1 + s.Bounds.Y2) / 2
}

// GridScan is the result of reading a puzzle grid from an image selection.
type GridScan struct {
	// Grid is the recognized character matrix, normalized for searching.
	Grid grid.Grid `json:"-"`

	// Lines is Grid rendered one string per row.
	Lines []string `json:"lines"`

	// Bounds is the union of all symbol boxes, relative to the crop.
	Bounds geometry.Rect `json:"bounds"`

	// Region is the image-space rectangle that was cropped and scanned.
	Region geometry.Rect `json:"region"`

	// RaggedRows lists rows whose length differs from the first row, which
	// usually means OCR dropped or merged a letter.
	RaggedRows []int `json:"ragged_rows,omitempty"`

	Symbols []Symbol `json:"symbols"`
}

// AssembleGrid arranges recognized symbols into grid rows.
//
// Symbols are ordered by vertical center. A symbol joins the current row
// while its center lies above that row's lowest box edge; otherwise it
// starts a new row. Each row is then ordered left to right. Symbol text is
// normalized the same way as grid.Parse, so '1' becomes 'I'; symbols that
// normalize to nothing are dropped.
func AssembleGrid(symbols []Symbol) *GridScan {
	kept := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if grid.NormalizeWord(s.Text) == "" {
			continue
		}
		kept = append(kept, s)
	}

	scan := &GridScan{Grid: grid.Grid{}, Symbols: kept}
	if len(kept) == 0 {
		scan.Lines = []string{}
		return scan
	}

	ordered := make([]Symbol, len(kept))
	copy(ordered, kept)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].centerY() < ordered[j].centerY()
	})

	var rows [][]Symbol
	bottom := 0
	for _, s := range ordered {
		if len(rows) == 0 || s.centerY() > bottom {
			rows = append(rows, []Symbol{s})
			bottom = s.Bounds.Y2
			continue
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], s)
		if s.Bounds.Y2 > bottom {
			bottom = s.Bounds.Y2
		}
	}

	bounds := ordered[0].Bounds
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Bounds.X1 < row[j].Bounds.X1
		})
		var line []rune
		for _, s := range row {
			line = append(line, []rune(grid.NormalizeWord(s.Text))...)
			bounds = union(bounds, s.Bounds)
		}
		scan.Grid = append(scan.Grid, line)
	}

	scan.Bounds = bounds
	scan.Lines = scan.Grid.Lines()
	scan.RaggedRows = scan.Grid.RaggedRows()
	return scan
}

func union(a, b geometry.Rect) geometry.Rect {
	if b.X1 < a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 < a.Y1 {
		a.Y1 = b.Y1
	}
	if b.X2 > a.X2 {
		a.X2 = b.X2
	}
	if b.Y2 > a.Y2 {
		a.Y2 = b.Y2
	}
	return a
}
