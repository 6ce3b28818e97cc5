package tiledraw

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Registered decoders for LoadTexture.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Texture is a decoded source image handle. It tracks a release flag so
// that drawing after Release is caught as a caller error instead of
// reading freed pixels.
//
// A Texture must stay valid for the duration of any draw call that
// uses it. The library never retains a Texture between calls.
type Texture struct {
	img      image.Image
	label    string
	released bool
}

// NewTexture wraps a decoded image. The label identifies the texture in
// diagnostics output; it may be empty.
func NewTexture(img image.Image, label string) *Texture {
	return &Texture{img: img, label: label}
}

// LoadTexture loads a texture from a PNG, JPEG or WebP file.
// The file's base name becomes the texture label.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tiledraw: decoding %s: %w", path, err)
	}
	return NewTexture(img, filepath.Base(path)), nil
}

// Image returns the decoded pixels.
func (t *Texture) Image() image.Image {
	return t.img
}

// Label returns the diagnostics label.
func (t *Texture) Label() string {
	return t.label
}

// Size returns the pixel dimensions of the texture.
func (t *Texture) Size() Size {
	b := t.img.Bounds()
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Release marks the texture as no longer usable for drawing.
// Release is idempotent.
func (t *Texture) Release() {
	t.released = true
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t.released
}
