package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateGeometry reports a zero-sized dimension or an empty puzzle.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Point is an integer pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FPoint is a sub-pixel position in display space.
type FPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p FPoint) Add(dx, dy float64) FPoint {
	return FPoint{X: p.X + dx, Y: p.Y + dy}
}

// Dimensions is the pixel size of an image or display surface.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Validate returns ErrDegenerateGeometry unless both sides are positive.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrDegenerateGeometry, d.Width, d.Height)
	}
	return nil
}

func validatePair(img, disp Dimensions) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	if err := disp.Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// ImageToDisplay scales an image-space point onto the display surface,
// flooring X and ceiling Y.
func ImageToDisplay(p Point, img, disp Dimensions) (Point, error) {
	if err := validatePair(img, disp); err != nil {
		return Point{}, err
	}
	x := math.Floor(float64(p.X) / float64(img.Width) * float64(disp.Width))
	y := math.Ceil(float64(p.Y) / float64(img.Height) * float64(disp.Height))
	return Point{X: int(x), Y: int(y)}, nil
}

// DisplayToImage scales a display-space point back into the image, ceiling
// both axes.
func DisplayToImage(p Point, img, disp Dimensions) (Point, error) {
	if err := validatePair(img, disp); err != nil {
		return Point{}, err
	}
	x := math.Ceil(float64(p.X) / float64(disp.Width) * float64(img.Width))
	y := math.Ceil(float64(p.Y) / float64(disp.Height) * float64(img.Height))
	return Point{X: int(x), Y: int(y)}, nil
}

// FitToHeight sizes a display surface to the given height, keeping the
// image's aspect ratio. Width is truncated to a whole pixel.
func FitToHeight(img Dimensions, height int) (Dimensions, error) {
	if err := img.Validate(); err != nil {
		return Dimensions{}, fmt.Errorf("image: %w", err)
	}
	if height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: display height %d", ErrDegenerateGeometry, height)
	}
	return Dimensions{Width: height * img.Width / img.Height, Height: height}, nil
}
