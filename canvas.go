package tiledraw

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Surface is the drawing target contract consumed by DrawImage.
// Any rendering backend can participate in tiled painting by
// implementing these five operations. Canvas is the built-in software
// implementation; Recorder captures the operations for inspection.
//
// Save and Restore must nest: every Save is paired with exactly one
// Restore, and Restore undoes all transform and clip changes made
// since the matching Save.
type Surface interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops to the most recently saved state.
	Restore()

	// Transform appends m to the current transformation.
	Transform(m Matrix)

	// ClipRect intersects the current clip with r, in device coordinates
	// as of the current transform at the time of the call.
	ClipRect(r Rect)

	// DrawImageRect draws srcRect of src into dstRect under the current
	// transform and clip, using the given paint attributes.
	DrawImageRect(src image.Image, srcRect, dstRect Rect, p *Paint)
}

// canvasState is one entry of the Save/Restore stack.
type canvasState struct {
	matrix Matrix
	clip   image.Rectangle
}

// Canvas is the software Surface implementation. It rasterizes into a
// Pixmap using the golang.org/x/image/draw interpolators.
type Canvas struct {
	width  int
	height int
	pixmap *Pixmap

	matrix Matrix
	clip   image.Rectangle
	stack  []canvasState

	diag SizeDiagnostics
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a software canvas with the given dimensions.
// Optional CanvasOption arguments customize the target pixmap and
// diagnostics sink:
//
//	cv := tiledraw.NewCanvas(800, 600)
//	cv := tiledraw.NewCanvas(800, 600, tiledraw.WithDiagnostics(diag))
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	options := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixmap: pixmap,
		matrix: Identity(),
		clip:   pixmap.Bounds(),
		stack:  make([]canvasState, 0, 8),
		diag:   options.diag,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Pixmap returns the target pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Image returns a copy of the current canvas contents.
func (c *Canvas) Image() image.Image { return c.pixmap.ToImage() }

// Diagnostics returns the canvas's diagnostics sink, or nil.
func (c *Canvas) Diagnostics() SizeDiagnostics { return c.diag }

// Clear fills the canvas with a color, ignoring transform and clip.
func (c *Canvas) Clear(col RGBA) {
	c.pixmap.Clear(col)
}

// SavePNG writes the current canvas contents to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Save pushes the current transform and clip state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{matrix: c.matrix, clip: c.clip})
}

// Restore pops to the most recently saved state.
// Restoring with an empty stack is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = top.matrix
	c.clip = top.clip
}

// Transform appends m to the current transformation.
func (c *Canvas) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// Translate appends a translation to the current transformation.
func (c *Canvas) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Scale appends a scaling to the current transformation.
func (c *Canvas) Scale(x, y float64) {
	c.Transform(Scale(x, y))
}

// SetTransform replaces the current transformation.
func (c *Canvas) SetTransform(m Matrix) {
	c.matrix = m
}

// GetTransform returns the current transformation.
func (c *Canvas) GetTransform() Matrix {
	return c.matrix
}

// ClipRect intersects the current clip with r. The rectangle is mapped
// through the current transform, then its bounding box is clipped.
func (c *Canvas) ClipRect(r Rect) {
	tl := c.matrix.TransformPoint(Pt(r.Left(), r.Top()))
	br := c.matrix.TransformPoint(Pt(r.Right(), r.Bottom()))
	device := RectLTRB(
		min(tl.X, br.X), min(tl.Y, br.Y),
		max(tl.X, br.X), max(tl.Y, br.Y),
	)
	c.clip = c.clip.Intersect(device.ImageRect())
}

// DrawImageRect draws srcRect of src into dstRect under the current
// transform and clip.
//
// srcRect is in source image pixels; dstRect is in user coordinates.
// A nil paint uses defaults. Empty source or destination rectangles
// draw nothing.
func (c *Canvas) DrawImageRect(src image.Image, srcRect, dstRect Rect, p *Paint) {
	if p == nil {
		p = NewPaint()
	}
	if srcRect.IsEmpty() || dstRect.IsEmpty() || c.clip.Empty() {
		return
	}

	src = filterSource(src, p)
	sr := srcRect.ImageRect().Intersect(src.Bounds())
	if sr.Empty() {
		return
	}

	// Maps source pixel coordinates to device coordinates: position the
	// source rect origin at the destination origin, scaled to fit.
	m := c.matrix.
		Multiply(Translate(dstRect.X, dstRect.Y)).
		Multiply(Scale(dstRect.W/srcRect.W, dstRect.H/srcRect.H)).
		Multiply(Translate(-srcRect.X, -srcRect.Y))

	dst, ok := c.pixmap.RGBA().SubImage(c.clip).(*image.RGBA)
	if !ok || dst.Bounds().Empty() {
		return
	}

	var opts *xdraw.Options
	if p.Opacity < 1.0 {
		a := p.Opacity
		if a < 0 {
			a = 0
		}
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(a*255 + 0.5)}),
		}
	}

	c.interpolator(p).Transform(dst, m.Aff3(), src, sr, xdraw.Over, opts)
}

// interpolator maps paint attributes to an x/image/draw sampler.
func (c *Canvas) interpolator(p *Paint) xdraw.Interpolator {
	if !p.Antialias {
		return xdraw.NearestNeighbor
	}
	switch p.FilterQuality {
	case FilterNone:
		return xdraw.NearestNeighbor
	case FilterMedium:
		return xdraw.BiLinear
	case FilterHigh:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}
