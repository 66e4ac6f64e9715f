// Package session holds the state of one puzzle being solved: the source
// image, the display surface it is shown on, the user's selection, the
// recognized grid and word bank, and the words currently highlighted.
//
// A Session is passed explicitly to whoever drives it (the MCP server or a
// CLI command). Methods enforce call order and report ErrNoImage,
// ErrNoSelection or ErrNoGrid when a prerequisite is missing.
package session

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
	"github.com/ironsheep/wordsearch-mcp/internal/imaging"
)

var (
	// ErrNoImage is returned by operations that need a loaded image.
	ErrNoImage = errors.New("no image loaded")

	// ErrNoSelection is returned by operations that need a puzzle selection.
	ErrNoSelection = errors.New("no puzzle selection")

	// ErrNoGrid is returned by operations that need a grid.
	ErrNoGrid = errors.New("no grid")
)

// DefaultDisplayHeight sizes the display surface when Options leaves it unset.
const DefaultDisplayHeight = 800

// Options configures a new Session.
type Options struct {
	// DisplayHeight is the initial display height for loaded images.
	DisplayHeight int

	// Style is the base render style. A zero LineWidth is sized from the
	// grid cell when rendering.
	Style imaging.RenderStyle
}

// Session is the state of one puzzle. It is safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	opts Options

	path     string
	img      image.Image
	imgDims  geometry.Dimensions
	display  geometry.Dimensions
	selected bool
	// sel is kept exactly as drawn, on the display size selDisp. The
	// selection for any other display is derived from it, never stored.
	sel      geometry.Rect
	selDisp  geometry.Dimensions
	scanned  geometry.Rect
	grid     grid.Grid
	words    grid.WordBank
	results  []grid.Result
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.DisplayHeight <= 0 {
		opts.DisplayHeight = DefaultDisplayHeight
	}
	return &Session{opts: opts}
}

// Load reads an image through the cache and makes it the session's image.
func (s *Session) Load(cache *imaging.ImageCache, path string) (*imaging.ImageInfo, error) {
	img, info, err := imaging.LoadImageInfo(cache, path)
	if err != nil {
		return nil, err
	}
	if err := s.SetImage(path, img); err != nil {
		return nil, err
	}
	return info, nil
}

// SetImage starts a new puzzle on img. The display surface is fitted to the
// configured height, and every piece of puzzle state is cleared.
func (s *Session) SetImage(path string, img image.Image) error {
	dims := imaging.Dimensions(img)
	display, err := geometry.FitToHeight(dims, s.opts.DisplayHeight)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.path = path
	s.img = img
	s.imgDims = dims
	s.display = display
	return nil
}

// Reset drops all state, including the image.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.path = ""
	s.img = nil
	s.imgDims = geometry.Dimensions{}
	s.display = geometry.Dimensions{}
	s.selected = false
	s.sel = geometry.Rect{}
	s.selDisp = geometry.Dimensions{}
	s.scanned = geometry.Rect{}
	s.grid = nil
	s.words = nil
	s.results = nil
}

// Image returns the loaded image and its size.
func (s *Session) Image() (image.Image, geometry.Dimensions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.img == nil {
		return nil, geometry.Dimensions{}, ErrNoImage
	}
	return s.img, s.imgDims, nil
}

// Display returns the current display surface size.
func (s *Session) Display() geometry.Dimensions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// Resize changes the display surface. Geometry is recomputed for the new
// size from the selection as it was drawn, so repeated resizes do not
// accumulate rounding and highlighted segments follow the image.
func (s *Session) Resize(display geometry.Dimensions) error {
	if err := display.Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return ErrNoImage
	}
	s.display = display
	return nil
}

// selection returns the puzzle selection on the current display. It maps
// the drawn rectangle through image space once when the display has changed
// since it was drawn.
func (s *Session) selection() (geometry.Rect, error) {
	if s.display == s.selDisp {
		return s.sel, nil
	}
	inImage, err := s.sel.ToImage(s.imgDims, s.selDisp)
	if err != nil {
		return geometry.Rect{}, err
	}
	return inImage.ToDisplay(s.imgDims, s.display)
}

// ResizeToHeight resizes the display to height, keeping the image aspect.
func (s *Session) ResizeToHeight(height int) error {
	s.mu.RLock()
	dims := s.imgDims
	loaded := s.img != nil
	s.mu.RUnlock()
	if !loaded {
		return ErrNoImage
	}

	display, err := geometry.FitToHeight(dims, height)
	if err != nil {
		return err
	}
	return s.Resize(display)
}

// SelectionInImage maps a display-space selection into the image rectangle
// that should be cropped for OCR.
func (s *Session) SelectionInImage(selection geometry.Rect) (geometry.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.img == nil {
		return geometry.Rect{}, ErrNoImage
	}
	return selection.ToImage(s.imgDims, s.display)
}

// Select records the puzzle selection (display space), the bounding box of
// the recognized letters (image pixels relative to the selection crop) and
// the grid read from it. Highlights are cleared.
func (s *Session) Select(selection, scanned geometry.Rect, g grid.Grid) error {
	selection = selection.Normalize()
	if selection.Empty() {
		return fmt.Errorf("%w: selection has no area", geometry.ErrDegenerateGeometry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return ErrNoImage
	}
	s.selected = true
	s.sel = selection
	s.selDisp = s.display
	s.scanned = scanned.Normalize()
	s.grid = g.Clone()
	s.results = nil
	return nil
}

// SetGrid replaces the grid, e.g. after the user corrects OCR mistakes.
// Highlights are cleared. The selection, if any, is kept.
func (s *Session) SetGrid(g grid.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g.Clone()
	s.results = nil
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() (grid.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.grid.Rows() == 0 {
		return nil, ErrNoGrid
	}
	return s.grid.Clone(), nil
}

// SetWords replaces the word bank. Words are normalized; blanks are dropped.
func (s *Session) SetWords(words []string) grid.WordBank {
	bank := grid.NormalizeBank(words)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = bank
	return append(grid.WordBank(nil), bank...)
}

// Words returns a copy of the word bank.
func (s *Session) Words() grid.WordBank {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(grid.WordBank(nil), s.words...)
}

// Geometry returns the puzzle geometry for the current display.
func (s *Session) Geometry() (geometry.PuzzleGeometry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geometry()
}

func (s *Session) geometry() (geometry.PuzzleGeometry, error) {
	if s.img == nil {
		return geometry.PuzzleGeometry{}, ErrNoImage
	}
	if !s.selected {
		return geometry.PuzzleGeometry{}, ErrNoSelection
	}
	if s.grid.Rows() == 0 {
		return geometry.PuzzleGeometry{}, ErrNoGrid
	}
	sel, err := s.selection()
	if err != nil {
		return geometry.PuzzleGeometry{}, err
	}
	g := geometry.PuzzleGeometry{
		Selection: sel,
		Scanned:   s.scanned,
		Image:     s.imgDims,
		Display:   s.display,
		Rows:      s.grid.Rows(),
	}
	return g, g.Validate()
}

// Find searches the grid for one word without changing the highlights.
func (s *Session) Find(word string) ([]grid.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.grid.Rows() == 0 {
		return nil, ErrNoGrid
	}
	return grid.Lookup(s.grid, grid.NormalizeWord(word))
}

// Highlight searches for words and makes them the highlighted set,
// replacing whatever was highlighted before. With no words, the whole word
// bank is used. Words that are not found are reported with Found false and
// draw nothing.
func (s *Session) Highlight(words ...string) ([]grid.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.geometry(); err != nil {
		return nil, err
	}

	bank := s.words
	if len(words) > 0 {
		bank = grid.NormalizeBank(words)
	}
	s.results = grid.SearchBank(s.grid, bank)
	return append([]grid.Result(nil), s.results...), nil
}

// ClearHighlights removes every highlighted word.
func (s *Session) ClearHighlights() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
}

// Segments returns the display-space lines for the highlighted words,
// located against the current display size.
func (s *Session) Segments() ([]geometry.Segment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.segments()
}

func (s *Session) segments() ([]geometry.Segment, error) {
	if len(s.results) == 0 {
		return nil, nil
	}
	g, err := s.geometry()
	if err != nil {
		return nil, err
	}
	var out []geometry.Segment
	for _, r := range s.results {
		segs, err := geometry.LocateSegments(r.Word, r.Matches, g)
		if err != nil {
			return nil, fmt.Errorf("locating %q: %w", r.Word, err)
		}
		out = append(out, segs...)
	}
	return out, nil
}

// Render draws the highlighted segments over the display-scaled image.
// When outline is true the selection is outlined as well.
func (s *Session) Render(outline bool) (*imaging.RenderResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.img == nil {
		return nil, ErrNoImage
	}

	segments, err := s.segments()
	if err != nil {
		return nil, err
	}

	style := s.opts.Style
	if style.LineWidth <= 0 {
		style.LineWidth = s.autoLineWidth()
	}
	if outline && s.selected {
		sel, err := s.selection()
		if err != nil {
			return nil, err
		}
		style.Selection = &sel
	}
	return imaging.RenderSolution(s.img, s.display, segments, style)
}

// autoLineWidth sizes strokes to a third of a grid cell.
func (s *Session) autoLineWidth() float64 {
	g, err := s.geometry()
	if err != nil {
		return imaging.DefaultLineWidth
	}
	unit, err := g.Unit()
	if err != nil || unit <= 0 {
		return imaging.DefaultLineWidth
	}
	return math.Max(1, unit/3)
}
