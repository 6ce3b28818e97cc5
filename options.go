package tiledraw

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default software canvas
//	cv := tiledraw.NewCanvas(800, 600)
//
//	// Render into an existing pixmap
//	cv := tiledraw.NewCanvas(800, 600, tiledraw.WithPixmap(pm))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pixmap *Pixmap
	diag   SizeDiagnostics
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		pixmap: nil, // Will be created if nil
		diag:   nil, // Diagnostics disabled by default
	}
}

// WithPixmap sets a custom pixmap for the Canvas.
// The pixmap dimensions should match the Canvas dimensions.
//
// Example:
//
//	pm := tiledraw.NewPixmap(800, 600)
//	cv := tiledraw.NewCanvas(800, 600, tiledraw.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithDiagnostics attaches a diagnostics sink to the Canvas.
// DrawImage reports decoded-versus-displayed size mismatches to the
// sink when the ImageOptions do not carry one of their own.
//
// Example:
//
//	diag := tiledraw.NewFrameDiagnostics()
//	cv := tiledraw.NewCanvas(800, 600, tiledraw.WithDiagnostics(diag))
func WithDiagnostics(d SizeDiagnostics) CanvasOption {
	return func(o *canvasOptions) {
		o.diag = d
	}
}
