package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
)

const referencePuzzle = `grid:
  - abcd
  - efgh
  - abdd
  - bcgd
words:
  - dd
  - abc
  - zzz
`

// run executes the command line with a config path that does not exist, so
// the defaults apply regardless of the user's home directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(BuildInfo{Version: "test-1.0.0", BuildTime: "now", GitCommit: "abc123"})
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "wordsearch version test-1.0.0")
	assert.Contains(t, out, "Git commit: abc123")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(BuildInfo{})

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "search", "solve", "version"}, names)

	flag := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_BadConfig(t *testing.T) {
	root := NewRootCmd(BuildInfo{})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--config", writeFile(t, "bad.toml", "[display]\nheight = -5\n"), "version"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestSearchCmd_Puzzle(t *testing.T) {
	path := writeFile(t, "puzzle.yaml", referencePuzzle)

	out, err := run(t, "", "search", "--puzzle", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Grid (4x4):")
	assert.Contains(t, out, "  ABDD")
	assert.Contains(t, out, "DD:\n  (2,2) E\n  (2,3) S\n  (3,3) N\n")
	assert.Contains(t, out, "ABC:\n  (0,0) E\n")
	assert.Contains(t, out, "ZZZ: not found")
	assert.Contains(t, out, "Found 2 of 3 words.")
}

func TestSearchCmd_JSON(t *testing.T) {
	path := writeFile(t, "puzzle.yaml", referencePuzzle)

	out, err := run(t, "", "search", "--puzzle", path, "--json", "dd")
	require.NoError(t, err)

	var results []grid.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1, "argument words replace the puzzle's list")
	assert.Equal(t, "DD", results[0].Word)
	assert.Equal(t, []grid.Match{
		{Row: 2, Col: 2, DX: 1, DY: 0},
		{Row: 2, Col: 3, DX: 0, DY: 1},
		{Row: 3, Col: 3, DX: 0, DY: -1},
	}, results[0].Matches)
}

func TestSearchCmd_GridFile(t *testing.T) {
	path := writeFile(t, "grid.txt", "c a t\ndogs\n\nx1xx\n")

	out, err := run(t, "", "search", "--grid", path, "cat", "dog", "ix")
	require.NoError(t, err)

	assert.Contains(t, out, "CAT:\n  (0,0) E")
	assert.Contains(t, out, "DOG:\n  (1,0) E")
	assert.Contains(t, out, "IX:\n  (2,1) E")
}

func TestSearchCmd_Errors(t *testing.T) {
	_, err := run(t, "", "search", "cat")
	assert.ErrorContains(t, err, "--puzzle or --grid")

	noWords := writeFile(t, "grid.txt", "abc\n")
	_, err = run(t, "", "search", "--grid", noWords)
	assert.ErrorIs(t, err, errNoWords)

	empty := writeFile(t, "empty.txt", "\n\n")
	_, err = run(t, "", "search", "--grid", empty, "a")
	assert.ErrorContains(t, err, "grid is empty")

	_, err = run(t, "", "search", "--puzzle", filepath.Join(t.TempDir(), "missing.yaml"), "a")
	assert.Error(t, err)
}

func TestServeCmd(t *testing.T) {
	out, err := run(t, `{"jsonrpc":"2.0","id":7,"method":"ping"}`+"\n", "serve")
	require.NoError(t, err)

	var resp struct {
		ID     float64         `json:"id"`
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &resp))
	assert.Equal(t, float64(7), resp.ID)
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	path := filepath.Join(t.TempDir(), "scan.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestSolveCmd_WithGridFile(t *testing.T) {
	imgPath := writePNG(t, 200, 200)
	gridPath := writeFile(t, "grid.txt", "abcd\nefgh\nabdd\nbcgd\n")
	outPath := filepath.Join(t.TempDir(), "solved.png")

	out, err := run(t, "", "solve", imgPath,
		"--grid", gridPath,
		"--region", "0,0,100,100",
		"--display-height", "100",
		"--out", outPath,
		"--outline",
		"dd", "emu")
	require.NoError(t, err)

	assert.Contains(t, out, "DD:\n  (2,2) E")
	assert.Contains(t, out, "EMU: not found")
	assert.Contains(t, out, "Solution written to "+outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestSolveCmd_Errors(t *testing.T) {
	imgPath := writePNG(t, 50, 50)
	gridPath := writeFile(t, "grid.txt", "abcd\n")
	outPath := filepath.Join(t.TempDir(), "solved.png")

	_, err := run(t, "", "solve", imgPath, "--out", outPath, "ab")
	assert.ErrorContains(t, err, "region")

	_, err = run(t, "", "solve", imgPath, "--grid", gridPath, "--region", "1,2,3", "--out", outPath, "ab")
	assert.ErrorContains(t, err, "--region")

	_, err = run(t, "", "solve", imgPath, "--grid", gridPath, "--region", "0,0,20,20", "--out", outPath)
	assert.ErrorIs(t, err, errNoWords)

	_, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.png"), "--grid", gridPath, "--region", "0,0,20,20", "--out", outPath, "ab")
	assert.Error(t, err)
}

func TestParseRect(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Rect
		wantErr bool
	}{
		{"1,2,30,40", geometry.Rect{X1: 1, Y1: 2, X2: 30, Y2: 40}, false},
		{" 30, 40 ,1,2", geometry.Rect{X1: 1, Y1: 2, X2: 30, Y2: 40}, false},
		{"1,2,3", geometry.Rect{}, true},
		{"a,b,c,d", geometry.Rect{}, true},
		{"5,5,5,9", geometry.Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRect(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPuzzle(t *testing.T) {
	p, err := LoadPuzzle(writeFile(t, "p.yaml", referencePuzzle))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "efgh", "abdd", "bcgd"}, p.Grid)
	assert.Equal(t, []string{"dd", "abc", "zzz"}, p.Words)

	_, err = LoadPuzzle(writeFile(t, "bad.yaml", "grid: [unterminated"))
	assert.Error(t, err)
}
