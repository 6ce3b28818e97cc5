package tiledraw

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// Contract violations detected by DrawImage. These indicate caller
// bugs; DrawImage returns them before touching the surface.
var (
	// ErrNilTexture reports a draw with no texture.
	ErrNilTexture = errors.New("tiledraw: nil texture")

	// ErrTextureReleased reports a draw with a released texture.
	ErrTextureReleased = errors.New("tiledraw: texture already released")

	// ErrCenterSliceFit reports a center slice combined with a fit that
	// crops the image, so the slice margins would not all be visible.
	ErrCenterSliceFit = errors.New("tiledraw: center slice requires a fit that keeps the whole image visible")

	// ErrCenterSliceBounds reports a center slice outside the texture.
	ErrCenterSliceBounds = errors.New("tiledraw: center slice outside texture bounds")
)

// ImageOptions describes one image paint operation. Options are
// assembled fresh per call; DrawImage never retains them.
type ImageOptions struct {
	// Rect is the output rectangle the image covers, in surface
	// coordinates. An empty rectangle draws nothing.
	Rect Rect

	// Texture is the decoded source image. It must not be released for
	// the duration of the call.
	Texture *Texture

	// Scale is the texture's pixel density: the number of texture
	// pixels per output unit. Zero means 1.
	Scale float64

	// Fit sizes the image into Rect. The zero value is FitFill.
	Fit Fit

	// Alignment positions the fitted image within Rect. Mirror repeat
	// modes ignore it and center the source tile; use Shift to slide
	// the grid instead.
	Alignment Alignment

	// Repeat replicates the fitted image to cover Rect.
	Repeat Repeat

	// Shift slides the tiling grid by a sub-tile offset. Components
	// must lie within [0, tileWidth] and [0, tileHeight] of the fitted
	// tile.
	Shift Point

	// CenterSlice, when non-nil, enables nine-patch stretching. It is
	// the stretchable region in texture pixels. Combined with a repeat
	// mode, each tile is drawn as a nine-patch.
	CenterSlice *Rect

	// FlipHorizontally mirrors the whole operation about Rect's
	// vertical center line, before any tiling. Used for text-direction
	// aware assets. It composes with the per-tile mirror flips.
	FlipHorizontally bool

	// Paint carries the attributes passed through to every primitive
	// draw. Nil means defaults.
	Paint *Paint

	// Diagnostics, when non-nil, receives a decoded-versus-displayed
	// report for this draw. When nil, the surface's own sink is used if
	// it has one.
	Diagnostics SizeDiagnostics
}

// DrawImage paints a texture into opts.Rect on dst, applying fit,
// alignment, repeat tiling with mirror support, nine-patch slicing and
// the outer horizontal flip.
//
// The operation is synchronous and one-shot: it either completes,
// leaving only pixels on the surface, or returns an error having drawn
// nothing. Surface transform and clip state is saved and restored
// around every draw that changes it.
func DrawImage(dst Surface, opts ImageOptions) error {
	if opts.Texture == nil {
		return ErrNilTexture
	}
	if opts.Texture.Released() {
		return fmt.Errorf("%w: %q", ErrTextureReleased, opts.Texture.Label())
	}
	if opts.Rect.IsEmpty() {
		return nil
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	paint := opts.Paint
	if paint == nil {
		paint = NewPaint()
	}

	input := opts.Texture.Size()
	output := opts.Rect.Size()

	// Center-slice margins are fixed: take them out before fitting and
	// put them back afterwards, so only the stretchable region scales.
	// The border is measured in texture pixels on the source side and
	// border/scale output units on the destination side.
	var sliceBorder, logicalBorder Size
	if cs := opts.CenterSlice; cs != nil {
		if cs.IsEmpty() || cs.Left() < 0 || cs.Top() < 0 ||
			cs.Right() > input.W || cs.Bottom() > input.H {
			return fmt.Errorf("%w: slice=%+v, texture=%gx%g",
				ErrCenterSliceBounds, *cs, input.W, input.H)
		}
		sliceBorder = Size{
			W: cs.Left() + (input.W - cs.Right()),
			H: cs.Top() + (input.H - cs.Bottom()),
		}
		logicalBorder = sliceBorder.Div(scale)
		input = input.Sub(sliceBorder)
		output = output.Sub(logicalBorder)
	}

	fittedSource, destination := FitSizes(opts.Fit, input.Div(scale), output)
	sourceSize := fittedSource.Mul(scale)
	if opts.CenterSlice != nil {
		if !sizeApproxEq(sourceSize, input) {
			return fmt.Errorf("%w: fit=%v", ErrCenterSliceFit, opts.Fit)
		}
		input = input.Add(sliceBorder)
		output = output.Add(logicalBorder)
		destination = destination.Add(logicalBorder)
	}

	// A fitted image that exactly fills the output cannot tile; the
	// mode degenerates to a single draw.
	repeat := opts.Repeat
	if repeat != RepeatNone && destination == output {
		repeat = RepeatNone
	}

	// Mirror tiling is defined relative to a centered source tile.
	// Positional adjustment goes through Shift, not Alignment.
	alignment := opts.Alignment
	if repeat.Mirrors() {
		alignment = AlignCenter
	}

	halfDeltaW := (output.W - destination.W) / 2
	halfDeltaH := (output.H - destination.H) / 2
	destRect := RectFromSize(
		Pt(opts.Rect.X+halfDeltaW+alignment.X*halfDeltaW, opts.Rect.Y+halfDeltaH+alignment.Y*halfDeltaH),
		destination,
	)

	reportOversize(dst, opts, destRect.Size())

	// Generate placements before touching surface state so that a shift
	// contract violation leaves the surface untouched.
	var placements iter.Seq[TilePlacement]
	if repeat != RepeatNone {
		var err error
		placements, err = TileRects(opts.Rect, destRect, repeat, opts.Shift)
		if err != nil {
			return err
		}
	}

	if opts.FlipHorizontally || repeat != RepeatNone {
		dst.Save()
		defer dst.Restore()
	}
	if repeat != RepeatNone {
		dst.ClipRect(opts.Rect)
	}
	if opts.FlipHorizontally {
		dst.Transform(FlipXAbout(opts.Rect.Center().X))
	}

	img := opts.Texture.Image()
	var drawOne func(r Rect)
	if cs := opts.CenterSlice; cs != nil {
		drawOne = func(r Rect) {
			drawNinePatch(dst, img, *cs, r, scale, paint)
		}
	} else {
		sourceRect := alignment.Inscribe(sourceSize, RectFromSize(Pt(0, 0), input))
		drawOne = func(r Rect) {
			dst.DrawImageRect(img, sourceRect, r, paint)
		}
	}

	if repeat == RepeatNone {
		drawOne(destRect)
		return nil
	}
	for p := range placements {
		drawTile(dst, p, repeat, drawOne)
	}
	return nil
}

// drawTile draws one placement, flipping it when the mode mirrors and
// the tile sits an odd grid distance from the source on that axis. The
// flip pivots about the placement's own center, so the tile stays in
// place and only its content mirrors. The source tile at (0, 0) is
// never flipped.
func drawTile(dst Surface, p TilePlacement, mode Repeat, drawOne func(Rect)) {
	flipX := mode.MirrorsX() && p.OddX()
	flipY := mode.MirrorsY() && p.OddY()
	if !flipX && !flipY {
		drawOne(p.Rect)
		return
	}

	dst.Save()
	defer dst.Restore()
	center := p.Rect.Center()
	if flipX {
		dst.Transform(FlipXAbout(center.X))
	}
	if flipY {
		dst.Transform(FlipYAbout(center.Y))
	}
	drawOne(p.Rect)
}

// drawNinePatch draws the texture into r with center-slice stretching.
// slice is in texture pixels; the fixed margins are sized in output
// units, so a scale of 2 halves their on-surface size.
func drawNinePatch(dst Surface, img image.Image, slice Rect, r Rect, scale float64, p *Paint) {
	b := img.Bounds()
	logical := Size{W: float64(b.Dx()) / scale, H: float64(b.Dy()) / scale}
	for _, pair := range NinePatchRegions(logical, scaleRect(slice, 1/scale), r) {
		dst.DrawImageRect(img, scaleRect(pair.Src, scale), pair.Dst, p)
	}
}

// reportOversize feeds the diagnostics sink, preferring the per-draw
// sink over the surface's.
func reportOversize(dst Surface, opts ImageOptions, displayed Size) {
	sink := opts.Diagnostics
	if sink == nil {
		if dp, ok := dst.(interface{ Diagnostics() SizeDiagnostics }); ok {
			sink = dp.Diagnostics()
		}
	}
	if sink == nil {
		return
	}
	sink.ReportOversize(opts.Texture.Label(), opts.Texture.Size(), displayed)
}

func scaleRect(r Rect, s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

// sizeApproxEq compares sizes with a small tolerance for the float
// round trips in fit resolution.
func sizeApproxEq(a, b Size) bool {
	const eps = 1e-9
	return abs(a.W-b.W) < eps && abs(a.H-b.H) < eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
