package common

// Logical screen size. The camera renders the world into a view of this
// size regardless of the OS window dimensions.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// World bounds. Levels always get at least a screen's worth of world and
// only ever grow horizontally; MarginRight pads past the rightmost
// platform edge so the camera doesn't clamp flush against the last shape.
const (
	MinWorldWidth  = BaseWidth
	MinWorldHeight = BaseHeight
	MarginRight    = 64
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
