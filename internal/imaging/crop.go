package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
)

// EncodedImage is a PNG image ready to be returned over MCP.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// PNG holds the raw encoded bytes for callers writing a file.
	PNG []byte `json:"-"`
}

// CropSelection extracts the image-space rectangle r from img.
//
// The rectangle is normalized first, so a selection dragged from
// bottom-right to top-left crops the same area as one dragged the other way.
// The crop is clamped to the image; a rectangle with no area left after
// clamping is an error.
func CropSelection(img image.Image, r geometry.Rect) (*image.NRGBA, error) {
	rect := r.Normalize().Image().Intersect(img.Bounds())
	if rect.Empty() {
		b := img.Bounds()
		return nil, fmt.Errorf("selection (%d,%d)-(%d,%d) does not overlap image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	return imaging.Crop(img, rect), nil
}

// ScaleToDisplay resizes img to the display surface size.
//
// Parameters:
//   - img: The source image.
//   - disp: Target display dimensions. Both sides must be positive.
//
// Returns:
//   - *image.NRGBA: The scaled image. Aspect ratio is not preserved; use
//     geometry.FitToHeight to pick a display size that keeps it.
//   - error: Wraps geometry.ErrDegenerateGeometry for a zero-sized display.
func ScaleToDisplay(img image.Image, disp geometry.Dimensions) (*image.NRGBA, error) {
	if err := disp.Validate(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	return imaging.Resize(img, disp.Width, disp.Height, imaging.Lanczos), nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode returns img as a base64 PNG.
func Encode(img image.Image) (*EncodedImage, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &EncodedImage{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
		PNG:         data,
	}, nil
}
