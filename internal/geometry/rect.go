package geometry

import "image"

// Rect is an axis-aligned rectangle. (X1,Y1) is inclusive, (X2,Y2) exclusive
// once normalized.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Normalize orders the corners so X1 <= X2 and Y1 <= Y2. A selection
// dragged up or to the left arrives with its corners reversed.
func (r Rect) Normalize() Rect {
	if r.X2 < r.X1 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y2 < r.Y1 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Empty reports whether the normalized rectangle has no area.
func (r Rect) Empty() bool {
	n := r.Normalize()
	return n.Width() == 0 || n.Height() == 0
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// Image converts to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// RectFromImage converts an image.Rectangle.
func RectFromImage(ir image.Rectangle) Rect {
	return Rect{X1: ir.Min.X, Y1: ir.Min.Y, X2: ir.Max.X, Y2: ir.Max.Y}
}

// ToImage maps a display-space rectangle into image space.
func (r Rect) ToImage(img, disp Dimensions) (Rect, error) {
	n := r.Normalize()
	a, err := DisplayToImage(Point{X: n.X1, Y: n.Y1}, img, disp)
	if err != nil {
		return Rect{}, err
	}
	b, err := DisplayToImage(Point{X: n.X2, Y: n.Y2}, img, disp)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}, nil
}

// ToDisplay maps an image-space rectangle onto the display surface.
func (r Rect) ToDisplay(img, disp Dimensions) (Rect, error) {
	n := r.Normalize()
	a, err := ImageToDisplay(Point{X: n.X1, Y: n.Y1}, img, disp)
	if err != nil {
		return Rect{}, err
	}
	b, err := ImageToDisplay(Point{X: n.X2, Y: n.Y2}, img, disp)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}, nil
}
