// Package ocr reads a word search puzzle out of an image using Tesseract.
//
// The engine is reached through gosseract/v2, so the Tesseract and
// Leptonica libraries must be installed at build time:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Grid Extraction
//
// ExtractGrid crops the selection, binarizes it, and asks Tesseract for
// symbol-level boxes. AssembleGrid then groups the boxes into rows by their
// vertical centers and orders each row left to right. The union of all
// boxes is returned as GridScan.Bounds; together with the selection it
// anchors the solution overlay (see geometry.PuzzleGeometry).
//
// Recognition is restricted to letters by default. A serif 'I' is often
// read as '1', so '1' stays in the whitelist and is folded back to 'I'
// during normalization.
//
// ExtractWords does the same for the word list, at word level.
//
// # Error Handling
//
// Functions return errors for:
//   - Selections that do not overlap the image
//   - Unsupported language codes or missing language data
//   - Tesseract initialization failures
//
// OCR quality problems are not errors. A grid with rows of different
// lengths is still returned; GridScan.RaggedRows lists the suspect rows.
package ocr
