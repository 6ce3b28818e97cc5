package tiledraw

import (
	"math"
	"testing"
)

func pointNear(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not the identity")
	}
	p := Pt(3, 7)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity moved point: %+v", got)
	}
}

func TestMatrixTranslateScale(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 23)
	if !pointNear(got, want) {
		t.Errorf("TransformPoint = %+v, want %+v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Scale(2, 4))
	inv := m.Invert()
	p := Pt(17, 29)
	if got := inv.TransformPoint(m.TransformPoint(p)); !pointNear(got, p) {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Scale(0, 0)
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}

func TestFlipXAbout(t *testing.T) {
	m := FlipXAbout(50)

	tests := []struct {
		in, want Point
	}{
		{Pt(50, 10), Pt(50, 10)}, // pivot line unchanged
		{Pt(0, 10), Pt(100, 10)}, // mirrored across pivot
		{Pt(75, -5), Pt(25, -5)}, // y untouched
		{Pt(-10, 0), Pt(110, 0)}, // works outside [0, 2*pivot]
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !pointNear(got, tt.want) {
			t.Errorf("FlipXAbout(50)(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFlipYAbout(t *testing.T) {
	m := FlipYAbout(30)
	if got := m.TransformPoint(Pt(7, 0)); !pointNear(got, Pt(7, 60)) {
		t.Errorf("FlipYAbout(30)(7,0) = %+v, want (7,60)", got)
	}
}

func TestFlipComposition(t *testing.T) {
	// Flipping both axes about a tile center maps the tile onto itself
	// with corners exchanged.
	tile := RectXYWH(100, 100, 100, 100)
	c := tile.Center()
	m := FlipXAbout(c.X).Multiply(FlipYAbout(c.Y))

	got := m.TransformPoint(Pt(tile.Left(), tile.Top()))
	want := Pt(tile.Right(), tile.Bottom())
	if !pointNear(got, want) {
		t.Errorf("corner maps to %+v, want %+v", got, want)
	}
}

func TestFlipIsInvolution(t *testing.T) {
	m := FlipXAbout(123.5)
	if got := m.Multiply(m); !matrixNear(got, Identity()) {
		t.Errorf("flip applied twice = %+v, want identity", got)
	}
}

func matrixNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}
