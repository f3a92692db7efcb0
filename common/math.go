package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeAngle maps degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// ApproachAngle turns from current toward target by at most step degrees,
// taking the shorter way round.
func ApproachAngle(current, target, step float64) float64 {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) <= step {
		return NormalizeAngle(target)
	}
	if diff > 0 {
		return NormalizeAngle(current + step)
	}
	return NormalizeAngle(current - step)
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned box
// given by its top-left corner and size.
func CircleIntersectsRect(cx, cy, r, x, y, w, h float64) bool {
	nx := Clamp(cx, x, x+w)
	ny := Clamp(cy, y, y+h)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
