package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
	"github.com/ironsheep/wordsearch-mcp/internal/imaging"
	"github.com/ironsheep/wordsearch-mcp/internal/logger"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "puzzle_load", "puzzle_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logger.Info("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Drives the session (and OCR where needed)
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Puzzle Setup
	case "puzzle_load":
		return s.handlePuzzleLoad(args)
	case "puzzle_select":
		return s.handlePuzzleSelect(args)
	case "puzzle_set_grid":
		return s.handlePuzzleSetGrid(args)
	case "puzzle_set_words":
		return s.handlePuzzleSetWords(args)
	case "puzzle_resize":
		return s.handlePuzzleResize(args)

	// Solving
	case "puzzle_search":
		return s.handlePuzzleSearch(args)
	case "puzzle_solve":
		return s.handlePuzzleSolve(args)
	case "puzzle_render":
		return s.handlePuzzleRender(args)
	case "puzzle_clear":
		return s.handlePuzzleClear(args)

	// Inspection
	case "puzzle_state":
		return s.session.State(), nil
	case "ocr_info":
		return s.recognizer.Info(), nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// rectArgs is a rectangle given by two corners in any order.
type rectArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r rectArgs) rect() geometry.Rect {
	return geometry.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}.Normalize()
}

// === Puzzle Setup Handlers ===

type puzzleLoadArgs struct {
	Path          string `json:"path"`
	DisplayHeight int    `json:"display_height"`
}

type puzzleLoadResult struct {
	*imaging.ImageInfo
	Display geometry.Dimensions `json:"display"`
}

func (s *Server) handlePuzzleLoad(args json.RawMessage) (interface{}, error) {
	var a puzzleLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	// A reload must see the file as it is now.
	s.cache.Evict(a.Path)
	info, err := s.session.Load(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	if a.DisplayHeight > 0 {
		if err := s.session.ResizeToHeight(a.DisplayHeight); err != nil {
			return nil, err
		}
	}
	logger.Info("Loaded %s (%dx%d)", a.Path, info.Width, info.Height)
	return puzzleLoadResult{ImageInfo: info, Display: s.session.Display()}, nil
}

type puzzleSelectArgs struct {
	rectArgs

	// Rows skips grid OCR when the caller already knows the letters.
	Rows []string `json:"rows,omitempty"`

	// Scanned is the letters' bounding box in image pixels relative to the
	// selection crop. Only used with Rows; defaults to the whole crop.
	Scanned *rectArgs `json:"scanned,omitempty"`

	// WordsRegion, in display space, is read with word-level OCR into the
	// word bank.
	WordsRegion *rectArgs `json:"words_region,omitempty"`
}

type puzzleSelectResult struct {
	Grid       []string      `json:"grid"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	RaggedRows []int         `json:"ragged_rows,omitempty"`
	Selection  geometry.Rect `json:"selection"`
	Region     geometry.Rect `json:"region"`
	Scanned    geometry.Rect `json:"scanned"`
	Unit       float64       `json:"unit"`
	Words      grid.WordBank `json:"words,omitempty"`
	Symbols    int           `json:"symbols,omitempty"`
}

func (s *Server) handlePuzzleSelect(args json.RawMessage) (interface{}, error) {
	var a puzzleSelectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, dims, err := s.session.Image()
	if err != nil {
		return nil, err
	}
	selection := a.rect()
	region, err := s.session.SelectionInImage(selection)
	if err != nil {
		return nil, err
	}

	var (
		g       grid.Grid
		scanned geometry.Rect
		symbols int
	)
	if len(a.Rows) > 0 {
		g = grid.Parse(a.Rows)
		region = geometry.RectFromImage(region.Image().Intersect(img.Bounds()))
		scanned = geometry.Rect{X2: region.Width(), Y2: region.Height()}
		if a.Scanned != nil {
			scanned = a.Scanned.rect()
		}
	} else {
		scan, err := s.recognizer.ExtractGrid(img, region, s.ocrOpts)
		if err != nil {
			return nil, err
		}
		g, scanned, region, symbols = scan.Grid, scan.Bounds, scan.Region, len(scan.Symbols)
	}
	if g.Rows() == 0 {
		return nil, fmt.Errorf("no letters recognized in selection %+v of %dx%d image", region, dims.Width, dims.Height)
	}
	if ragged := g.RaggedRows(); len(ragged) > 0 {
		logger.Warn("Grid rows %v differ in length from row 0", ragged)
	}

	// Word list OCR runs first so a failure leaves the session untouched.
	var words grid.WordBank
	if a.WordsRegion != nil {
		wordsRegion, err := s.session.SelectionInImage(a.WordsRegion.rect())
		if err != nil {
			return nil, err
		}
		if words, err = s.recognizer.ExtractWords(img, wordsRegion, s.ocrOpts); err != nil {
			return nil, fmt.Errorf("word list OCR failed: %w", err)
		}
	}

	if err := s.session.Select(selection, scanned, g); err != nil {
		return nil, err
	}

	result := puzzleSelectResult{
		Grid:       g.Lines(),
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		RaggedRows: g.RaggedRows(),
		Selection:  selection,
		Region:     region,
		Scanned:    scanned,
		Symbols:    symbols,
	}

	if a.WordsRegion != nil {
		result.Words = s.session.SetWords(words)
	}

	geo, err := s.session.Geometry()
	if err != nil {
		return nil, err
	}
	if result.Unit, err = geo.Unit(); err != nil {
		return nil, err
	}
	return result, nil
}

type puzzleSetGridArgs struct {
	Rows []string `json:"rows"`
}

func (s *Server) handlePuzzleSetGrid(args json.RawMessage) (interface{}, error) {
	var a puzzleSetGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g := grid.Parse(a.Rows)
	if g.Rows() == 0 {
		return nil, errors.New("rows must contain at least one non-blank row")
	}
	s.session.SetGrid(g)
	return s.session.State(), nil
}

type puzzleSetWordsArgs struct {
	Words []string `json:"words"`
}

func (s *Server) handlePuzzleSetWords(args json.RawMessage) (interface{}, error) {
	var a puzzleSetWordsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bank := s.session.SetWords(a.Words)
	return map[string]interface{}{
		"words": bank,
		"count": len(bank),
	}, nil
}

type puzzleResizeArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handlePuzzleResize(args json.RawMessage) (interface{}, error) {
	var a puzzleResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var err error
	if a.Width == 0 {
		err = s.session.ResizeToHeight(a.Height)
	} else {
		err = s.session.Resize(geometry.Dimensions{Width: a.Width, Height: a.Height})
	}
	if err != nil {
		return nil, err
	}
	return s.session.State(), nil
}

// === Solving Handlers ===

type puzzleSearchArgs struct {
	Word string `json:"word"`
}

type wordResult struct {
	Word    string      `json:"word"`
	Found   bool        `json:"found"`
	Matches []matchInfo `json:"matches"`
}

type matchInfo struct {
	grid.Match
	Direction string   `json:"direction"`
	Cells     [][2]int `json:"cells"`
}

func newWordResult(word string, matches []grid.Match) wordResult {
	n := len([]rune(word))
	r := wordResult{Word: word, Found: len(matches) > 0, Matches: make([]matchInfo, len(matches))}
	for i, m := range matches {
		r.Matches[i] = matchInfo{Match: m, Direction: m.Direction().String(), Cells: m.Cells(n)}
	}
	return r
}

func (s *Server) handlePuzzleSearch(args json.RawMessage) (interface{}, error) {
	var a puzzleSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	word := grid.NormalizeWord(a.Word)

	matches, err := s.session.Find(word)
	if err != nil && !errors.Is(err, grid.ErrWordNotFound) && !errors.Is(err, grid.ErrEmptySearchTerm) {
		return nil, err
	}
	return newWordResult(word, matches), nil
}

type puzzleSolveArgs struct {
	Words   []string `json:"words"`
	Render  bool     `json:"render"`
	Outline bool     `json:"outline"`
}

type puzzleSolveResult struct {
	Results  []wordResult          `json:"results"`
	Found    int                   `json:"found"`
	Missing  []string              `json:"missing"`
	Segments []geometry.Segment    `json:"segments"`
	Image    *imaging.RenderResult `json:"image,omitempty"`
}

func (s *Server) handlePuzzleSolve(args json.RawMessage) (interface{}, error) {
	var a puzzleSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	results, err := s.session.Highlight(a.Words...)
	if err != nil {
		return nil, err
	}
	segments, err := s.session.Segments()
	if err != nil {
		return nil, err
	}

	out := puzzleSolveResult{
		Results:  make([]wordResult, len(results)),
		Missing:  []string{},
		Segments: segments,
	}
	for i, r := range results {
		out.Results[i] = newWordResult(r.Word, r.Matches)
		if r.Found {
			out.Found++
		} else {
			out.Missing = append(out.Missing, r.Word)
		}
	}
	if out.Segments == nil {
		out.Segments = []geometry.Segment{}
	}

	if a.Render {
		if out.Image, err = s.session.Render(a.Outline); err != nil {
			return nil, err
		}
	}
	logger.Debug("Solved %d/%d words", out.Found, len(results))
	return out, nil
}

type puzzleRenderArgs struct {
	Outline bool `json:"outline"`
}

func (s *Server) handlePuzzleRender(args json.RawMessage) (interface{}, error) {
	var a puzzleRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.session.Render(a.Outline)
}

type puzzleClearArgs struct {
	All bool `json:"all"`
}

func (s *Server) handlePuzzleClear(args json.RawMessage) (interface{}, error) {
	var a puzzleClearArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.All {
		s.session.Reset()
		s.cache.Clear()
	} else {
		s.session.ClearHighlights()
	}
	return s.session.State(), nil
}
