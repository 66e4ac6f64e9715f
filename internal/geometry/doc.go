// Package geometry maps between the three coordinate spaces of a scanned
// puzzle and turns grid matches into drawable line segments.
//
// # Coordinate Spaces
//
//   - Image space: pixels of the source image as decoded from disk.
//   - Display space: pixels of the surface the image is shown on, which is
//     the image scaled (not necessarily uniformly) to the display size.
//   - Grid space: [row][col] cell indexes of the recognized puzzle.
//
// All spaces put (0,0) at the top-left with X growing right and Y growing
// down.
//
// # Rounding
//
// ImageToDisplay floors X and ceils Y. DisplayToImage ceils both axes.
// Existing overlays were computed this way and these functions reproduce
// them exactly; do not "fix" the asymmetry without re-checking rendered
// solutions.
//
// # Errors
//
// A zero or negative dimension, or a puzzle with no rows, is a caller bug.
// Every function that would divide by such a value returns an error wrapping
// ErrDegenerateGeometry instead of producing Inf or NaN coordinates.
package geometry
