package tiledraw

import (
	"image"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40)
	if r.Left() != 10 || r.Top() != 20 || r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = (%g,%g,%g,%g)", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if got := r.Center(); got != Pt(25, 40) {
		t.Errorf("Center = %+v, want (25,40)", got)
	}
	if got := RectLTRB(10, 20, 40, 60); got != r {
		t.Errorf("RectLTRB = %+v, want %+v", got, r)
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectXYWH(0, 0, 100, 100)
	b := RectXYWH(50, 50, 100, 100)

	if got, want := a.Intersect(b), RectXYWH(50, 50, 50, 50); got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectXYWH(200, 200, 10, 10)
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(5, 5), true},
		{Pt(10, 5), false}, // right edge exclusive
		{Pt(5, 10), false}, // bottom edge exclusive
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectImageRect(t *testing.T) {
	r := RectXYWH(0.5, 0.5, 9, 9)
	want := image.Rect(0, 0, 10, 10)
	if got := r.ImageRect(); got != want {
		t.Errorf("ImageRect = %v, want %v", got, want)
	}

	exact := RectXYWH(1, 2, 3, 4)
	if got := exact.ImageRect(); got != image.Rect(1, 2, 4, 6) {
		t.Errorf("exact ImageRect = %v", got)
	}
}

func TestRectShift(t *testing.T) {
	r := RectXYWH(1, 2, 3, 4).Shift(10, -2)
	if want := RectXYWH(11, 0, 3, 4); r != want {
		t.Errorf("Shift = %+v, want %+v", r, want)
	}
}
