package tiledraw

// FilterQuality selects the sampling filter used when an image is
// scaled or transformed onto the target surface.
type FilterQuality int

const (
	// FilterNone selects the closest pixel (no interpolation).
	FilterNone FilterQuality = iota

	// FilterLow performs approximate bilinear interpolation.
	// Good balance between quality and performance. This is the default.
	FilterLow

	// FilterMedium performs exact bilinear interpolation.
	FilterMedium

	// FilterHigh performs Catmull-Rom interpolation.
	// Highest quality but slowest.
	FilterHigh
)

// String returns a string representation of the filter quality.
func (q FilterQuality) String() string {
	switch q {
	case FilterNone:
		return "None"
	case FilterLow:
		return "Low"
	case FilterMedium:
		return "Medium"
	case FilterHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// BlendMode defines how a tint color is combined with image pixels.
type BlendMode int

const (
	// BlendNormal composites the tint over the image (source over).
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies tint and image colors.
	// Result is always darker or equal.
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen

	// BlendOverlay combines multiply and screen based on image brightness.
	BlendOverlay

	// BlendDarken keeps the darker of tint and image per channel.
	BlendDarken

	// BlendLighten keeps the lighter of tint and image per channel.
	BlendLighten
)

// String returns a string representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	default:
		return "Unknown"
	}
}

// Paint carries the attributes applied to a primitive image draw.
// All fields pass through to the draw unchanged; the tiling layer never
// reinterprets them.
type Paint struct {
	// FilterQuality selects the sampling filter.
	FilterQuality FilterQuality

	// Antialias enables smoothed sampling. When false the draw falls
	// back to nearest-neighbor sampling regardless of FilterQuality.
	Antialias bool

	// Opacity controls the overall transparency of the source image
	// (0.0 to 1.0). Default is 1.0.
	Opacity float64

	// Tint, when non-nil, is blended with the source pixels using
	// TintMode before drawing.
	Tint *RGBA

	// TintMode selects how Tint is combined with the source.
	TintMode BlendMode

	// InvertColors inverts the source color channels before tinting.
	InvertColors bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		FilterQuality: FilterLow,
		Antialias:     true,
		Opacity:       1.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	if p.Tint != nil {
		tint := *p.Tint
		q.Tint = &tint
	}
	return &q
}

// hasColorPass reports whether the paint requires a color filtering
// pass over the source pixels.
func (p *Paint) hasColorPass() bool {
	return p.InvertColors || p.Tint != nil
}
