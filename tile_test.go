package tiledraw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectTiles(t *testing.T, output, tile Rect, mode Repeat, shift Point) []TilePlacement {
	t.Helper()
	seq, err := TileRects(output, tile, mode, shift)
	if err != nil {
		t.Fatalf("TileRects failed: %v", err)
	}
	var out []TilePlacement
	for p := range seq {
		out = append(out, p)
	}
	return out
}

func TestTileRectsMirrorBothGrid(t *testing.T) {
	// A 100x100 tile centered in a 300x300 output covers it with a 3x3
	// grid of placements from (-1,-1) through (1,1).
	output := RectXYWH(0, 0, 300, 300)
	tile := RectXYWH(100, 100, 100, 100)

	got := collectTiles(t, output, tile, MirrorBoth, Point{})

	var want []TilePlacement
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			want = append(want, TilePlacement{
				Rect:  tile.Shift(float64(i)*100, float64(j)*100),
				Coord: TileCoord{X: i, Y: j},
			})
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestTileRectsRepeatX(t *testing.T) {
	// Horizontal-only tiling: the Y index range collapses to {0}.
	output := RectXYWH(0, 0, 300, 100)
	tile := RectXYWH(0, 0, 100, 100)

	got := collectTiles(t, output, tile, RepeatX, Point{})

	if len(got) != 3 {
		t.Fatalf("placements = %d, want 3", len(got))
	}
	for k, p := range got {
		if p.Coord.Y != 0 {
			t.Errorf("placement %d: Coord.Y = %d, want 0", k, p.Coord.Y)
		}
		if wantX := float64(k * 100); p.Rect.X != wantX {
			t.Errorf("placement %d: Rect.X = %g, want %g", k, p.Rect.X, wantX)
		}
	}
}

func TestTileRectsCoverage(t *testing.T) {
	tests := []struct {
		name   string
		output Rect
		tile   Rect
	}{
		{"aligned", RectXYWH(0, 0, 300, 300), RectXYWH(0, 0, 100, 100)},
		{"misaligned", RectXYWH(0, 0, 300, 300), RectXYWH(37, 59, 80, 60)},
		{"tile larger than output", RectXYWH(0, 0, 50, 50), RectXYWH(-10, -10, 200, 200)},
		{"negative origin output", RectXYWH(-150, -150, 300, 300), RectXYWH(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTiles(t, tt.output, tt.tile, RepeatBoth, Point{})
			if len(got) == 0 {
				t.Fatal("no placements generated")
			}

			minLeft, maxRight := got[0].Rect.Left(), got[0].Rect.Right()
			minTop, maxBottom := got[0].Rect.Top(), got[0].Rect.Bottom()
			for _, p := range got {
				// Placements sit exactly on the stride grid.
				if wantX := tt.tile.X + float64(p.Coord.X)*tt.tile.W; p.Rect.X != wantX {
					t.Errorf("coord %+v: Rect.X = %g, want %g", p.Coord, p.Rect.X, wantX)
				}
				if wantY := tt.tile.Y + float64(p.Coord.Y)*tt.tile.H; p.Rect.Y != wantY {
					t.Errorf("coord %+v: Rect.Y = %g, want %g", p.Coord, p.Rect.Y, wantY)
				}
				minLeft = min(minLeft, p.Rect.Left())
				maxRight = max(maxRight, p.Rect.Right())
				minTop = min(minTop, p.Rect.Top())
				maxBottom = max(maxBottom, p.Rect.Bottom())
			}

			// The union covers the output with no boundary gaps.
			if minLeft > tt.output.Left() || maxRight < tt.output.Right() {
				t.Errorf("X coverage [%g, %g] does not cover [%g, %g]",
					minLeft, maxRight, tt.output.Left(), tt.output.Right())
			}
			if minTop > tt.output.Top() || maxBottom < tt.output.Bottom() {
				t.Errorf("Y coverage [%g, %g] does not cover [%g, %g]",
					minTop, maxBottom, tt.output.Top(), tt.output.Bottom())
			}
		})
	}
}

func TestTileRectsShiftBounds(t *testing.T) {
	tile := RectXYWH(0, 0, 100, 100)
	tests := []struct {
		name    string
		shift   Point
		wantErr bool
	}{
		{"zero", Point{}, false},
		{"max inclusive", Pt(100, 100), false},
		{"interior", Pt(50, 1), false},
		{"x too large", Pt(101, 0), true},
		{"y too large", Pt(0, 101), true},
		{"negative x", Pt(-1, 0), true},
		{"negative y", Pt(0, -0.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TileRects(RectXYWH(0, 0, 300, 300), tile, RepeatBoth, tt.shift)
			if tt.wantErr {
				if !errors.Is(err, ErrShiftOutOfRange) {
					t.Errorf("err = %v, want ErrShiftOutOfRange", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTileRectsShiftWidensBounds(t *testing.T) {
	// A shift pushes the start/stop bounds outward by up to one tile on
	// each side.
	output := RectXYWH(0, 0, 300, 100)
	tile := RectXYWH(0, 0, 100, 100)

	got := collectTiles(t, output, tile, RepeatX, Pt(50, 0))

	if len(got) != 5 {
		t.Fatalf("placements = %d, want 5", len(got))
	}
	if got[0].Coord.X != -1 || got[len(got)-1].Coord.X != 3 {
		t.Errorf("coord range [%d, %d], want [-1, 3]",
			got[0].Coord.X, got[len(got)-1].Coord.X)
	}
}

func TestTileRectsEmptyOutput(t *testing.T) {
	for _, output := range []Rect{
		RectXYWH(0, 0, 0, 100),
		RectXYWH(0, 0, 100, 0),
		RectXYWH(10, 10, -5, 20),
	} {
		got := collectTiles(t, output, RectXYWH(0, 0, 100, 100), RepeatBoth, Point{})
		if len(got) != 0 {
			t.Errorf("output %+v: placements = %d, want 0", output, len(got))
		}
	}
}

func TestTileRectsNoRepeat(t *testing.T) {
	// Without a tiling axis both index ranges are the single value 0.
	tile := RectXYWH(20, 30, 100, 100)
	got := collectTiles(t, RectXYWH(0, 0, 300, 300), tile, RepeatNone, Point{})

	want := []TilePlacement{{Rect: tile, Coord: TileCoord{}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestTileRectsDeterminism(t *testing.T) {
	output := RectXYWH(0, 0, 313, 217)
	tile := RectXYWH(41, 23, 97, 61)

	first := collectTiles(t, output, tile, MirrorBoth, Pt(10, 20))
	second := collectTiles(t, output, tile, MirrorBoth, Pt(10, 20))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("sequences differ between invocations (-first +second):\n%s", diff)
	}
}

func TestTilePlacementParity(t *testing.T) {
	tests := []struct {
		coord TileCoord
		oddX  bool
		oddY  bool
	}{
		{TileCoord{0, 0}, false, false},
		{TileCoord{1, 0}, true, false},
		{TileCoord{-1, 0}, true, false},
		{TileCoord{2, -3}, false, true},
		{TileCoord{-2, -2}, false, false},
	}
	for _, tt := range tests {
		p := TilePlacement{Coord: tt.coord}
		if p.OddX() != tt.oddX {
			t.Errorf("coord %+v: OddX = %v, want %v", tt.coord, p.OddX(), tt.oddX)
		}
		if p.OddY() != tt.oddY {
			t.Errorf("coord %+v: OddY = %v, want %v", tt.coord, p.OddY(), tt.oddY)
		}
	}
}
