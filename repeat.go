package tiledraw

// Repeat controls how an image tile is replicated to cover the output
// rectangle. The mirror modes flip alternating tiles so that adjacent
// edges always match, producing a seamless texture from any source
// image.
type Repeat int

const (
	// RepeatNone draws the image once.
	RepeatNone Repeat = iota

	// RepeatBoth tiles the image along both axes.
	RepeatBoth

	// RepeatX tiles the image horizontally only.
	RepeatX

	// RepeatY tiles the image vertically only.
	RepeatY

	// MirrorBoth tiles along both axes, flipping every other tile on
	// each axis.
	MirrorBoth

	// MirrorX tiles horizontally, flipping every other column.
	MirrorX

	// MirrorY tiles vertically, flipping every other row.
	MirrorY
)

// String returns a string representation of the repeat mode.
func (r Repeat) String() string {
	switch r {
	case RepeatNone:
		return "None"
	case RepeatBoth:
		return "RepeatBoth"
	case RepeatX:
		return "RepeatX"
	case RepeatY:
		return "RepeatY"
	case MirrorBoth:
		return "MirrorBoth"
	case MirrorX:
		return "MirrorX"
	case MirrorY:
		return "MirrorY"
	default:
		return "Unknown"
	}
}

// TilesX reports whether the mode replicates tiles horizontally.
func (r Repeat) TilesX() bool {
	return r == RepeatBoth || r == RepeatX || r == MirrorBoth || r == MirrorX
}

// TilesY reports whether the mode replicates tiles vertically.
func (r Repeat) TilesY() bool {
	return r == RepeatBoth || r == RepeatY || r == MirrorBoth || r == MirrorY
}

// MirrorsX reports whether the mode flips odd columns horizontally.
func (r Repeat) MirrorsX() bool {
	return r == MirrorBoth || r == MirrorX
}

// MirrorsY reports whether the mode flips odd rows vertically.
func (r Repeat) MirrorsY() bool {
	return r == MirrorBoth || r == MirrorY
}

// Mirrors reports whether the mode is one of the mirror modes.
func (r Repeat) Mirrors() bool {
	return r.MirrorsX() || r.MirrorsY()
}
