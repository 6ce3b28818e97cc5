package tiledraw

import "math"

// Fit controls how a source image is sized into an output rectangle.
type Fit int

const (
	// FitFill stretches the image to fill the output, distorting the
	// aspect ratio if necessary.
	FitFill Fit = iota

	// FitContain scales the image as large as possible while keeping it
	// entirely inside the output.
	FitContain

	// FitCover scales the image as small as possible while covering the
	// entire output, cropping the overflow.
	FitCover

	// FitWidth matches the image width to the output width.
	FitWidth

	// FitHeight matches the image height to the output height.
	FitHeight

	// FitNone centers the image without scaling, cropping any overflow.
	FitNone

	// FitScaleDown behaves like FitContain but never scales up.
	FitScaleDown
)

// String returns a string representation of the fit.
func (f Fit) String() string {
	switch f {
	case FitFill:
		return "Fill"
	case FitContain:
		return "Contain"
	case FitCover:
		return "Cover"
	case FitWidth:
		return "FitWidth"
	case FitHeight:
		return "FitHeight"
	case FitNone:
		return "None"
	case FitScaleDown:
		return "ScaleDown"
	default:
		return "Unknown"
	}
}

// FitSizes resolves a fit: given the input image size and the output
// box size, it returns the portion of the input to show (source, in
// input units) and the size to show it at (destination, in output
// units). Aligning the source region within the input and the
// destination region within the output is the caller's concern; see
// Alignment.Inscribe.
func FitSizes(fit Fit, input, output Size) (source, destination Size) {
	if input.IsEmpty() || output.IsEmpty() {
		return Size{}, Size{}
	}

	switch fit {
	case FitFill:
		source = input
		destination = output

	case FitContain:
		source = input
		if output.AspectRatio() > input.AspectRatio() {
			destination = Size{W: input.W * output.H / input.H, H: output.H}
		} else {
			destination = Size{W: output.W, H: input.H * output.W / input.W}
		}

	case FitCover:
		if output.AspectRatio() > input.AspectRatio() {
			source = Size{W: input.W, H: input.W / output.AspectRatio()}
		} else {
			source = Size{W: input.H * output.AspectRatio(), H: input.H}
		}
		destination = output

	case FitWidth:
		if output.AspectRatio() > input.AspectRatio() {
			source = Size{W: input.W, H: input.W / output.AspectRatio()}
			destination = output
		} else {
			source = input
			destination = Size{W: output.W, H: input.H * output.W / input.W}
		}

	case FitHeight:
		if output.AspectRatio() > input.AspectRatio() {
			source = input
			destination = Size{W: input.W * output.H / input.H, H: output.H}
		} else {
			source = Size{W: input.H * output.AspectRatio(), H: input.H}
			destination = output
		}

	case FitNone:
		source = Size{W: math.Min(input.W, output.W), H: math.Min(input.H, output.H)}
		destination = source

	case FitScaleDown:
		source, destination = FitSizes(FitContain, input, output)
		aspect := input.AspectRatio()
		if destination.H > input.H {
			destination = Size{W: input.H * aspect, H: input.H}
		}
		if destination.W > input.W {
			destination = Size{W: input.W, H: input.W / aspect}
		}
	}

	return source, destination
}

// Alignment positions a smaller rectangle within a larger one. The
// components run from -1 (left/top) through 0 (center) to +1
// (right/bottom).
type Alignment struct {
	X, Y float64
}

// Common alignments.
var (
	AlignTopLeft      = Alignment{X: -1, Y: -1}
	AlignTopCenter    = Alignment{X: 0, Y: -1}
	AlignTopRight     = Alignment{X: 1, Y: -1}
	AlignCenterLeft   = Alignment{X: -1, Y: 0}
	AlignCenter       = Alignment{X: 0, Y: 0}
	AlignCenterRight  = Alignment{X: 1, Y: 0}
	AlignBottomLeft   = Alignment{X: -1, Y: 1}
	AlignBottomCenter = Alignment{X: 0, Y: 1}
	AlignBottomRight  = Alignment{X: 1, Y: 1}
)

// Inscribe positions a rectangle of the given size within r according
// to the alignment.
func (a Alignment) Inscribe(s Size, r Rect) Rect {
	halfDeltaW := (r.W - s.W) / 2
	halfDeltaH := (r.H - s.H) / 2
	return Rect{
		X: r.X + halfDeltaW + a.X*halfDeltaW,
		Y: r.Y + halfDeltaH + a.Y*halfDeltaH,
		W: s.W,
		H: s.H,
	}
}
