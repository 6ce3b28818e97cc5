// Package tiledraw paints images into rectangles with repeat and
// mirror tiling, producing seamless edge-to-edge textures from
// arbitrary source images.
//
// # Overview
//
// tiledraw extends the usual image-into-rectangle painting routine
// with mirror repeat modes: alternating tiles are flipped horizontally
// and/or vertically by grid-distance parity, so adjacent tile edges
// always match. The package provides the tile-placement generator, the
// mirror-aware compositor, fit and alignment resolution, nine-patch
// (center-slice) stretching, and a software canvas to draw onto.
//
// # Quick Start
//
//	import "github.com/gogpu/tiledraw"
//
//	cv := tiledraw.NewCanvas(512, 512)
//	tex, _ := tiledraw.LoadTexture("texture.png")
//
//	_ = tiledraw.DrawImage(cv, tiledraw.ImageOptions{
//	    Rect:    tiledraw.RectXYWH(0, 0, 512, 512),
//	    Texture: tex,
//	    Repeat:  tiledraw.MirrorBoth,
//	})
//
//	cv.SavePNG("output.png")
//
// # Surfaces
//
// Painting targets implement the small Surface interface. Canvas is
// the built-in software rasterizer; Recorder captures the draw
// sequence for inspection instead of producing pixels. Hosts with
// their own rendering stack implement Surface to reuse the tiling
// logic unchanged.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// One paint operation is a single synchronous pass; the package keeps
// no state between calls. Distinct canvases can be used from distinct
// goroutines.
package tiledraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
