package server

import (
	"image"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/grid"
	"github.com/ironsheep/wordsearch-mcp/internal/ocr"
)

// Recognizer reads a puzzle grid and word list from image regions.
type Recognizer interface {
	ExtractGrid(img image.Image, region geometry.Rect, opts ocr.Options) (*ocr.GridScan, error)
	ExtractWords(img image.Image, region geometry.Rect, opts ocr.Options) (grid.WordBank, error)
	Info() ocr.OCRInfo
}

// TesseractRecognizer is the Recognizer backed by the ocr package.
type TesseractRecognizer struct{}

func (TesseractRecognizer) ExtractGrid(img image.Image, region geometry.Rect, opts ocr.Options) (*ocr.GridScan, error) {
	return ocr.ExtractGrid(img, region, opts)
}

func (TesseractRecognizer) ExtractWords(img image.Image, region geometry.Rect, opts ocr.Options) (grid.WordBank, error) {
	return ocr.ExtractWords(img, region, opts)
}

func (TesseractRecognizer) Info() ocr.OCRInfo {
	return ocr.GetOCRInfo()
}
