package tiledraw

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
)

// filterSource applies the paint's color pass (invert, tint) to the
// source pixels and returns the image to sample from. When no color
// pass is requested the source is returned unchanged, so the common
// path performs no copies.
func filterSource(src image.Image, p *Paint) image.Image {
	if p == nil || !p.hasColorPass() {
		return src
	}

	out := clone.AsRGBA(src)
	if p.InvertColors {
		out = effect.Invert(out)
	}
	if p.Tint != nil {
		out = tintImage(out, *p.Tint, p.TintMode)
	}
	return out
}

// tintImage blends a uniform tint color over img using the given mode.
// The image's alpha channel is preserved: tinting recolors pixels but
// never extends coverage.
func tintImage(img *image.RGBA, tint RGBA, mode BlendMode) *image.RGBA {
	layer := image.NewRGBA(img.Bounds())
	draw.Draw(layer, layer.Bounds(), image.NewUniform(tint.NRGBA()), image.Point{}, draw.Src)

	var out *image.RGBA
	switch mode {
	case BlendMultiply:
		out = blend.Multiply(img, layer)
	case BlendScreen:
		out = blend.Screen(img, layer)
	case BlendOverlay:
		out = blend.Overlay(img, layer)
	case BlendDarken:
		out = blend.Darken(img, layer)
	case BlendLighten:
		out = blend.Lighten(img, layer)
	default:
		out = blend.Normal(img, layer)
	}

	// The uniform layer is fully opaque, so the blend result is too.
	// Copy the original alpha back.
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = img.Pix[i]
	}
	return out
}
