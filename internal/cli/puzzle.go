package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
)

// Puzzle is a puzzle written out by hand:
//
//	grid:
//	  - ABCD
//	  - EFGH
//	words:
//	  - ABC
type Puzzle struct {
	Grid  []string `yaml:"grid"`
	Words []string `yaml:"words"`
}

// LoadPuzzle reads a YAML puzzle file.
func LoadPuzzle(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle %s: %w", path, err)
	}
	return &p, nil
}

// readGridFile reads a plain text grid, one row per line.
func readGridFile(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid %s: %w", path, err)
	}
	return grid.Parse(lines), nil
}

// parseRect parses "x1,y1,x2,y2".
func parseRect(s string) (geometry.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("rectangle %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("rectangle %q: %w", s, err)
		}
		v[i] = n
	}
	r := geometry.Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}.Normalize()
	if r.Empty() {
		return geometry.Rect{}, fmt.Errorf("rectangle %q has no area", s)
	}
	return r, nil
}

// puzzleInput resolves the grid and words from the --puzzle and --grid
// flags plus any words given as arguments. Argument words replace the
// puzzle file's word list.
func puzzleInput(puzzlePath, gridPath string, args []string) (grid.Grid, grid.WordBank, error) {
	var (
		g     grid.Grid
		words []string
	)
	if puzzlePath != "" {
		p, err := LoadPuzzle(puzzlePath)
		if err != nil {
			return nil, nil, err
		}
		g = grid.Parse(p.Grid)
		words = p.Words
	}
	if gridPath != "" {
		fg, err := readGridFile(gridPath)
		if err != nil {
			return nil, nil, err
		}
		g = fg
	}
	if len(args) > 0 {
		words = args
	}
	return g, grid.NormalizeBank(words), nil
}

var errNoWords = errors.New("no words to search for: pass them as arguments or in the puzzle file")
