package tiledraw

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, -4)
	if got := a.Add(b); got != Pt(4, -2) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != Pt(-2, 6) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %+v", got)
	}
}

func TestSize(t *testing.T) {
	s := Sz(100, 50)
	if s.IsEmpty() {
		t.Error("non-empty size reports empty")
	}
	if got := s.AspectRatio(); got != 2 {
		t.Errorf("AspectRatio = %g, want 2", got)
	}
	if got := s.Mul(0.5); got != Sz(50, 25) {
		t.Errorf("Mul = %+v", got)
	}
	if got := s.Div(2); got != Sz(50, 25) {
		t.Errorf("Div = %+v", got)
	}
	if !Sz(0, 10).IsEmpty() || !Sz(10, -1).IsEmpty() {
		t.Error("degenerate sizes not empty")
	}
}
