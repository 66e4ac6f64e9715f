package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
)

// createInMemoryImage creates a solid color image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestCropSelection(t *testing.T) {
	img := createPatternImage(100, 100)

	cropped, err := CropSelection(img, geometry.Rect{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("CropSelection failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if r, g, bl := rgb8(cropped.At(25, 25)); r != 255 || g != 0 || bl != 0 {
		t.Errorf("cropped color: got (%d,%d,%d), want (255,0,0)", r, g, bl)
	}
}

func TestCropSelection_ReversedCorners(t *testing.T) {
	img := createPatternImage(100, 100)

	// Dragged from bottom-right to top-left over the white quadrant.
	cropped, err := CropSelection(img, geometry.Rect{X1: 100, Y1: 100, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("CropSelection failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if r, g, bl := rgb8(cropped.At(10, 10)); r != 255 || g != 255 || bl != 255 {
		t.Errorf("cropped color: got (%d,%d,%d), want white", r, g, bl)
	}
}

func TestCropSelection_Clamped(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	cropped, err := CropSelection(img, geometry.Rect{X1: -20, Y1: 80, X2: 30, Y2: 200})
	if err != nil {
		t.Fatalf("CropSelection failed: %v", err)
	}
	b := cropped.Bounds()
	if b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", b.Dx(), b.Dy())
	}
}

func TestCropSelection_NoOverlap(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		r    geometry.Rect
	}{
		{"outside", geometry.Rect{X1: 200, Y1: 200, X2: 300, Y2: 300}},
		{"zero width", geometry.Rect{X1: 50, Y1: 0, X2: 50, Y2: 50}},
		{"zero area", geometry.Rect{X1: 50, Y1: 50, X2: 50, Y2: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropSelection(img, tt.r); err == nil {
				t.Error("CropSelection should fail for a selection with no area")
			}
		})
	}
}

func TestScaleToDisplay(t *testing.T) {
	img := createInMemoryImage(200, 100, color.RGBA{0, 0, 255, 255})

	scaled, err := ScaleToDisplay(img, geometry.Dimensions{Width: 80, Height: 60})
	if err != nil {
		t.Fatalf("ScaleToDisplay failed: %v", err)
	}
	b := scaled.Bounds()
	if b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("dimensions: got %dx%d, want 80x60", b.Dx(), b.Dy())
	}

	_, err = ScaleToDisplay(img, geometry.Dimensions{Width: 0, Height: 60})
	if !errors.Is(err, geometry.ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	img := createPatternImage(40, 30)

	result, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if result.Width != 40 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if r, g, b := rgb8(decoded.At(5, 5)); r != 255 || g != 0 || b != 0 {
		t.Errorf("decoded color: got (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}
