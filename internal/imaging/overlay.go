package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
)

// DefaultLineWidth is used when a RenderStyle leaves LineWidth unset.
const DefaultLineWidth = 4.0

// RenderStyle controls how solution segments are drawn.
type RenderStyle struct {
	// LineWidth is the stroke width in display pixels.
	LineWidth float64

	// Color is "#RRGGBB" or "#RRGGBBAA". When empty, each distinct word gets
	// its own color from an evenly spaced palette.
	Color string

	// Alpha is the opacity applied to palette colors (0-255).
	Alpha uint8

	// Selection, when set, outlines the puzzle selection in display space.
	Selection *geometry.Rect
}

// RenderResult is the rendered solution overlay.
type RenderResult struct {
	EncodedImage
	Segments int `json:"segments"`
}

// RenderSolution draws solution segments over the display-scaled image.
//
// The image is first resized to disp, the surface the segments were located
// on. Each call starts from the clean image, so segments from an earlier
// render never carry over.
//
// Parameters:
//   - img: The source puzzle image.
//   - disp: Display surface size the segments are expressed in.
//   - segments: Lines to draw, in display coordinates.
//   - style: Stroke width and colors.
//
// Returns:
//   - *RenderResult: PNG of the overlay, base64 and raw.
//   - error: Non-nil for a degenerate display, an invalid color or an
//     encoding failure.
func RenderSolution(img image.Image, disp geometry.Dimensions, segments []geometry.Segment, style RenderStyle) (*RenderResult, error) {
	scaled, err := ScaleToDisplay(img, disp)
	if err != nil {
		return nil, err
	}

	colors, err := segmentColors(segments, style)
	if err != nil {
		return nil, err
	}

	width := style.LineWidth
	if width <= 0 {
		width = DefaultLineWidth
	}

	dc := gg.NewContextForImage(scaled)
	dc.SetLineCapRound()
	dc.SetLineWidth(width)
	for i, s := range segments {
		dc.SetColor(colors[i])
		dc.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		dc.Stroke()
	}

	if style.Selection != nil {
		sel := style.Selection.Normalize()
		dc.SetLineWidth(1)
		dc.SetColor(color.NRGBA{R: 0, G: 128, B: 255, A: 255})
		dc.DrawRectangle(float64(sel.X1), float64(sel.Y1), float64(sel.Width()), float64(sel.Height()))
		dc.Stroke()
	}

	enc, err := Encode(dc.Image())
	if err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &RenderResult{EncodedImage: *enc, Segments: len(segments)}, nil
}

// segmentColors picks one color per segment. A fixed style color applies
// to all; otherwise segments of the same word share a palette entry.
func segmentColors(segments []geometry.Segment, style RenderStyle) ([]color.Color, error) {
	colors := make([]color.Color, len(segments))
	if style.Color != "" {
		c, err := parseHexColor(style.Color)
		if err != nil {
			return nil, fmt.Errorf("invalid line color %q: %w", style.Color, err)
		}
		for i := range colors {
			colors[i] = c
		}
		return colors, nil
	}

	index := make(map[string]int)
	for _, s := range segments {
		if _, ok := index[s.Word]; !ok {
			index[s.Word] = len(index)
		}
	}
	palette := Palette(len(index), style.Alpha)
	for i, s := range segments {
		colors[i] = palette[index[s.Word]]
	}
	return colors, nil
}

// Palette returns n colors with evenly spaced hues. An alpha of 0 is
// treated as fully opaque.
func Palette(n int, alpha uint8) []color.Color {
	if alpha == 0 {
		alpha = 255
	}
	out := make([]color.Color, n)
	for i := range out {
		hue := float64(i) * 360 / float64(n)
		r, g, b := colorful.Hsv(hue, 0.85, 0.95).Clamped().RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: alpha}
	}
	return out
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA". The six-digit form goes
// through go-colorful; the alpha byte is handled here.
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	var alpha uint8 = 255
	switch len(hex) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, err
		}
		alpha = uint8(a)
		hex = hex[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
