package tiledraw

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrShiftOutOfRange reports a tile shift offset outside the tile's
// pixel bounds. This is a caller contract violation, not a degenerate
// input: the generator fails before producing any placements.
var ErrShiftOutOfRange = errors.New("tiledraw: shift offset outside tile bounds")

// TileCoord is a tile's signed grid offset from the source tile.
// (0, 0) is the source tile itself; positive values run right and
// down. The coordinate only feeds the mirror parity rule and is never
// kept beyond one paint operation.
type TileCoord struct {
	X, Y int
}

// TilePlacement is one tile's destination rectangle paired with its
// grid coordinate.
type TilePlacement struct {
	Rect  Rect
	Coord TileCoord
}

// OddX reports whether the placement sits an odd number of columns
// from the source tile.
func (p TilePlacement) OddX() bool { return p.Coord.X%2 != 0 }

// OddY reports whether the placement sits an odd number of rows from
// the source tile.
func (p TilePlacement) OddY() bool { return p.Coord.Y%2 != 0 }

// TileRects returns the tile placements needed to cover output with
// copies of tile under the given repeat mode. The sequence is lazy and
// finite; iteration order is X ascending, then Y ascending within each
// column, and re-invoking with identical inputs yields an identical
// sequence.
//
// tile is the rectangle the source image occupies after fit and
// alignment resolution; every placement is tile translated by a whole
// number of tile strides. An axis the mode does not tile collapses to
// the single coordinate 0. shift widens the covered range by up to one
// tile on each side, letting callers slide the grid without moving the
// source tile.
//
// shift components must lie within [0, tile.W] and [0, tile.H];
// violating that returns ErrShiftOutOfRange before anything is
// yielded. An empty output rectangle, an empty tile, or a start bound
// past its stop bound all yield an empty sequence without error.
func TileRects(output, tile Rect, mode Repeat, shift Point) (iter.Seq[TilePlacement], error) {
	if shift.X < 0 || shift.X > tile.W || shift.Y < 0 || shift.Y > tile.H {
		return nil, fmt.Errorf("%w: shift=(%g,%g), tile=%gx%g",
			ErrShiftOutOfRange, shift.X, shift.Y, tile.W, tile.H)
	}

	if output.IsEmpty() || tile.IsEmpty() {
		return func(func(TilePlacement) bool) {}, nil
	}

	startX, stopX := 0, 0
	if mode.TilesX() {
		startX = int(math.Floor((output.Left() - shift.X - tile.Left()) / tile.W))
		stopX = int(math.Ceil((output.Right() + shift.X - tile.Right()) / tile.W))
	}

	startY, stopY := 0, 0
	if mode.TilesY() {
		startY = int(math.Floor((output.Top() - shift.Y - tile.Top()) / tile.H))
		stopY = int(math.Ceil((output.Bottom() + shift.Y - tile.Bottom()) / tile.H))
	}

	return func(yield func(TilePlacement) bool) {
		for i := startX; i <= stopX; i++ {
			for j := startY; j <= stopY; j++ {
				p := TilePlacement{
					Rect:  tile.Shift(float64(i)*tile.W, float64(j)*tile.H),
					Coord: TileCoord{X: i, Y: j},
				}
				if !yield(p) {
					return
				}
			}
		}
	}, nil
}
