package tiledraw

// SizeDiagnostics receives decoded-versus-displayed footprint reports
// from DrawImage. It is an optional instrumentation hook: a nil sink
// disables reporting and never affects painting.
//
// Sinks are injected per canvas (WithDiagnostics) or per draw
// (ImageOptions.Diagnostics); the library holds no global reporting
// state.
type SizeDiagnostics interface {
	// ReportOversize is called once per draw with the texture's decoded
	// pixel size and the size it is displayed at. The sink decides
	// whether the mismatch is worth surfacing.
	ReportOversize(label string, decoded, displayed Size)
}

// oversizeAllowance is the slack, in bytes of RGBA pixel data, granted
// before a decode is considered oversized.
const oversizeAllowance = 128 * 1024

// FrameDiagnostics is the standard SizeDiagnostics sink. It logs
// textures whose decoded size meaningfully exceeds their displayed
// size, at most once per label per frame.
//
// Call BeginFrame at the start of each frame to reset the per-label
// dedup. FrameDiagnostics is not safe for concurrent use; painting is
// single-threaded per frame.
type FrameDiagnostics struct {
	// Allowance is the slack in bytes before a report fires.
	// Zero means the default of 128 KiB.
	Allowance int

	seen map[string]struct{}
}

var _ SizeDiagnostics = (*FrameDiagnostics)(nil)

// NewFrameDiagnostics creates a diagnostics sink with the default
// allowance.
func NewFrameDiagnostics() *FrameDiagnostics {
	return &FrameDiagnostics{seen: make(map[string]struct{})}
}

// BeginFrame clears the per-label dedup state for a new frame.
func (d *FrameDiagnostics) BeginFrame() {
	clear(d.seen)
}

// ReportOversize implements SizeDiagnostics. A texture is oversized
// when its decoded RGBA byte footprint exceeds the displayed footprint
// by more than the allowance.
func (d *FrameDiagnostics) ReportOversize(label string, decoded, displayed Size) {
	allowance := d.Allowance
	if allowance == 0 {
		allowance = oversizeAllowance
	}

	decodedBytes := int(decoded.W*decoded.H) * 4
	displayedBytes := int(displayed.W*displayed.H) * 4
	if decodedBytes-displayedBytes <= allowance {
		return
	}

	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, ok := d.seen[label]; ok {
		return
	}
	d.seen[label] = struct{}{}

	Logger().Warn("tiledraw: texture decoded larger than its display size",
		"label", label,
		"decodedWidth", decoded.W, "decodedHeight", decoded.H,
		"displayedWidth", displayed.W, "displayedHeight", displayed.H,
		"overheadBytes", decodedBytes-displayedBytes,
	)
}
