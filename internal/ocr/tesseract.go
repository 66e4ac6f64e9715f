package ocr

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
	"github.com/ironsheep/wordsearch-mcp/internal/imaging"
)

// DefaultWhitelist restricts recognition to letters. '1' is allowed because
// Tesseract often reads a serif 'I' as '1'; normalization maps it back.
const DefaultWhitelist = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1"

// Options configures a Tesseract pass.
type Options struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// Whitelist limits the characters Tesseract may return. Empty means no
	// restriction.
	Whitelist string

	// PageSegMode is Tesseract's page segmentation mode. Puzzle grids read
	// best as a single uniform block (6).
	PageSegMode int

	// Threshold binarizes the crop before recognition. 0 disables it.
	Threshold uint8
}

// DefaultOptions returns the settings used for puzzle grids.
func DefaultOptions() Options {
	return Options{
		Language:    "eng",
		Whitelist:   DefaultWhitelist,
		PageSegMode: int(gosseract.PSM_SINGLE_BLOCK),
		Threshold:   128,
	}
}

// ExtractGrid reads a puzzle grid from an image-space selection.
//
// Parameters:
//   - img: The full source image.
//   - region: The selection in image pixels. Corners may be in any order.
//   - opts: Tesseract settings; see DefaultOptions.
//
// Returns:
//   - *GridScan: The assembled grid, symbol boxes and their bounding box.
//     Boxes are relative to the crop, which is what PuzzleGeometry.Scanned
//     expects.
//   - error: Non-nil if cropping, encoding or Tesseract fails.
//
// # Implementation Details
//
// This function:
//  1. Crops the selection from the image
//  2. Binarizes it with bild's threshold filter (unless opts.Threshold is 0)
//  3. Runs Tesseract at symbol level on the PNG bytes
//  4. Groups the symbols into rows with AssembleGrid
func ExtractGrid(img image.Image, region geometry.Rect, opts Options) (*GridScan, error) {
	data, crop, err := prepare(img, region, opts)
	if err != nil {
		return nil, err
	}

	boxes, err := recognize(data, gosseract.RIL_SYMBOL, opts)
	if err != nil {
		return nil, err
	}

	symbols := make([]Symbol, 0, len(boxes))
	for _, box := range boxes {
		symbols = append(symbols, Symbol{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds:     geometry.RectFromImage(box.Box),
		})
	}

	scan := AssembleGrid(symbols)
	scan.Region = crop
	return scan, nil
}

// ExtractWords reads the puzzle's word list from an image-space selection
// and returns it normalized for searching.
func ExtractWords(img image.Image, region geometry.Rect, opts Options) (grid.WordBank, error) {
	data, _, err := prepare(img, region, opts)
	if err != nil {
		return nil, err
	}

	boxes, err := recognize(data, gosseract.RIL_WORD, opts)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, box.Word)
	}
	return grid.NormalizeBank(words), nil
}

// prepare crops, binarizes and encodes the selection. It also returns the
// crop rectangle actually used, after normalization and clamping.
func prepare(img image.Image, region geometry.Rect, opts Options) ([]byte, geometry.Rect, error) {
	cropped, err := imaging.CropSelection(img, region)
	if err != nil {
		return nil, geometry.Rect{}, err
	}
	crop := geometry.RectFromImage(region.Normalize().Image().Intersect(img.Bounds()))

	data, err := imaging.EncodePNG(binarize(cropped, opts.Threshold))
	if err != nil {
		return nil, geometry.Rect{}, err
	}
	return data, crop, nil
}

func binarize(img image.Image, level uint8) image.Image {
	if level == 0 {
		return img
	}
	return segment.Threshold(img, level)
}

func recognize(data []byte, level gosseract.PageIteratorLevel, opts Options) ([]gosseract.BoundingBox, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if opts.Language != "" {
		if err := client.SetLanguage(opts.Language); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if opts.Whitelist != "" {
		if err := client.SetWhitelist(opts.Whitelist); err != nil {
			return nil, fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(opts.PageSegMode)); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(level)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	return boxes, nil
}

// TesseractVersion returns the installed Tesseract version.
func TesseractVersion() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// OCRInfo contains information about the OCR subsystem.
type OCRInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Backend   string `json:"backend"`
}

// GetOCRInfo reports whether Tesseract is usable.
func GetOCRInfo() OCRInfo {
	version := TesseractVersion()
	return OCRInfo{
		Available: version != "",
		Version:   version,
		Backend:   "gosseract",
	}
}
