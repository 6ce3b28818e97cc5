package tiledraw

// PatchPair maps one nine-patch region of the source image to its
// destination region.
type PatchPair struct {
	Src, Dst Rect
}

// NinePatchRegions splits a source image and a destination rectangle
// into up to nine paired regions for center-slice stretching: the four
// corners keep their source size, the edges stretch along one axis,
// and the center stretches along both.
//
// input is the source image size and center the stretchable region,
// both in the same units; dst is the destination rectangle. When the
// destination is too small to hold the fixed margins at full size, the
// margins shrink proportionally. Empty regions are omitted.
func NinePatchRegions(input Size, center Rect, dst Rect) []PatchPair {
	left := center.Left()
	top := center.Top()
	right := input.W - center.Right()
	bottom := input.H - center.Bottom()

	dstLeft, dstRight := left, right
	if sum := left + right; sum > dst.W && sum > 0 {
		f := dst.W / sum
		dstLeft *= f
		dstRight *= f
	}
	dstTop, dstBottom := top, bottom
	if sum := top + bottom; sum > dst.H && sum > 0 {
		f := dst.H / sum
		dstTop *= f
		dstBottom *= f
	}

	srcXs := [4]float64{0, left, input.W - right, input.W}
	srcYs := [4]float64{0, top, input.H - bottom, input.H}
	dstXs := [4]float64{dst.Left(), dst.Left() + dstLeft, dst.Right() - dstRight, dst.Right()}
	dstYs := [4]float64{dst.Top(), dst.Top() + dstTop, dst.Bottom() - dstBottom, dst.Bottom()}

	pairs := make([]PatchPair, 0, 9)
	for iy := 0; iy < 3; iy++ {
		for ix := 0; ix < 3; ix++ {
			src := RectLTRB(srcXs[ix], srcYs[iy], srcXs[ix+1], srcYs[iy+1])
			d := RectLTRB(dstXs[ix], dstYs[iy], dstXs[ix+1], dstYs[iy+1])
			if src.IsEmpty() || d.IsEmpty() {
				continue
			}
			pairs = append(pairs, PatchPair{Src: src, Dst: d})
		}
	}
	return pairs
}
