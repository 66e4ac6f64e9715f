package session

import (
	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
)

// State is a snapshot of a session for reporting.
type State struct {
	ImagePath  string               `json:"image_path,omitempty"`
	Image      *geometry.Dimensions `json:"image,omitempty"`
	Display    *geometry.Dimensions `json:"display,omitempty"`
	Selection  *geometry.Rect       `json:"selection,omitempty"`
	Scanned    *geometry.Rect       `json:"scanned,omitempty"`
	Grid       []string             `json:"grid"`
	Rows       int                  `json:"rows"`
	Cols       int                  `json:"cols"`
	RaggedRows []int                `json:"ragged_rows,omitempty"`
	Words      []string             `json:"words"`
	Unit       float64              `json:"unit,omitempty"`
	Highlights []Highlight          `json:"highlights"`
}

// Highlight describes one highlighted word.
type Highlight struct {
	Word    string   `json:"word"`
	Found   bool     `json:"found"`
	Matches []string `json:"matches"`
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{
		ImagePath:  s.path,
		Grid:       s.grid.Lines(),
		Rows:       s.grid.Rows(),
		Cols:       s.grid.Cols(),
		RaggedRows: s.grid.RaggedRows(),
		Words:      append([]string{}, s.words...),
		Highlights: make([]Highlight, 0, len(s.results)),
	}
	if s.img != nil {
		img, disp := s.imgDims, s.display
		st.Image = &img
		st.Display = &disp
	}
	if s.selected {
		scanned := s.scanned
		st.Scanned = &scanned
		if sel, err := s.selection(); err == nil {
			st.Selection = &sel
		}
	}
	if g, err := s.geometry(); err == nil {
		if unit, err := g.Unit(); err == nil {
			st.Unit = unit
		}
	}
	for _, r := range s.results {
		st.Highlights = append(st.Highlights, Highlight{
			Word:    r.Word,
			Found:   r.Found,
			Matches: describeMatches(r.Matches),
		})
	}
	return st
}

func describeMatches(matches []grid.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.String()
	}
	return out
}
