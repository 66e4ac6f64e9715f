// Package imaging handles the pixel side of a scanned puzzle: loading the
// source image, cropping the user's selection for OCR, scaling the image to
// the display surface, and drawing solution lines over it.
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Rectangles are given as
// geometry.Rect: (X1,Y1) inclusive, (X2,Y2) exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and never modify their input image.
//
// # Rendering
//
// RenderSolution resizes the source image to the display dimensions with a
// Lanczos filter and strokes each segment with fogleman/gg. Segments are
// expected in display space, as produced by geometry.LocateMatchSegment for
// the same display dimensions. Rendering always starts from the source image,
// so the previous overlay is cleared on every call.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O or decode errors during image loading
//   - Selections that do not overlap the image
//   - Zero-sized display dimensions (wrapping geometry.ErrDegenerateGeometry)
//   - Malformed hex colors
//   - PNG encoding errors
package imaging
