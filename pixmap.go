package tiledraw

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer. It is backed by a
// standard *image.RGBA so library draw routines can blit into it
// without copying.
type Pixmap struct {
	rgba *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		rgba: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage creates a pixmap holding a copy of the given image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.rgba, pm.rgba.Bounds(), img, b.Min, draw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.rgba.Bounds().Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.rgba.Bounds().Dy()
}

// RGBA returns the backing image. Mutations are visible to the pixmap.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.rgba
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.rgba.Bounds()) {
		return
	}
	p.rgba.Set(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.rgba.Bounds()) {
		return Transparent
	}
	return FromColor(p.rgba.At(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.rgba, p.rgba.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.rgba.Bounds())
	copy(img.Pix, p.rgba.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.rgba)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.rgba.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.rgba.Bounds()
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return p.rgba.ColorModel()
}
