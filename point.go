package tiledraw

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Size represents a 2D extent.
type Size struct {
	W, H float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// AspectRatio returns width divided by height, or 0 for a zero height.
func (s Size) AspectRatio() float64 {
	if s.H == 0 {
		return 0
	}
	return s.W / s.H
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Div returns the size divided by a scalar.
func (s Size) Div(f float64) Size {
	return Size{W: s.W / f, H: s.H / f}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(t Size) Size {
	return Size{W: s.W + t.W, H: s.H + t.H}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(t Size) Size {
	return Size{W: s.W - t.W, H: s.H - t.H}
}
