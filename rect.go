package tiledraw

import (
	"image"
	"math"
)

// Rect represents an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectXYWH creates a rectangle from a top-left corner and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectLTRB creates a rectangle from its four edges.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// RectFromSize creates a rectangle at a position with the given size.
func RectFromSize(pos Point, s Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: s.W, H: s.H}
}

// Left returns the minimum x edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum y edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the maximum x edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum y edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Shift returns the rectangle translated by (dx, dy).
func (r Rect) Shift(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersect returns the intersection of two rectangles.
// The result is empty if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	left := math.Max(r.Left(), s.Left())
	top := math.Max(r.Top(), s.Top())
	right := math.Min(r.Right(), s.Right())
	bottom := math.Min(r.Bottom(), s.Bottom())
	return RectLTRB(left, top, right, bottom)
}

// Contains reports whether the point lies inside the rectangle.
// Points on the right or bottom edge are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// ImageRect converts to an image.Rectangle, rounding outward so the
// integer rectangle covers the float one.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left())),
		int(math.Floor(r.Top())),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}
