package wheel

import "math"

// EaseOut is the cubic ease-out curve b + c*(t^3 - 3t^2 + 3t) with t = elapsed/d.
// It returns b at t=0 and b+c at t=d.
func EaseOut(t, b, c, d float64) float64 {
	t /= d
	ts := t * t
	tc := ts * t
	return b + c*(tc-3*ts+3*t)
}

// PointerIndex returns the slot under the pointer at the top of the wheel for
// a cumulative rotation of startAngle radians and n segments. The pointer sits
// 90 degrees from angle zero. The raw formula yields n when the rotation lands
// exactly on a boundary, so the result is clamped to [0, n-1].
func PointerIndex(startAngle float64, n int) int {
	if n <= 0 {
		return 0
	}
	return pointerIndexDegrees(startAngle*180/math.Pi+90, n)
}

func pointerIndexDegrees(degrees float64, n int) int {
	arc := 360 / float64(n)
	idx := int(math.Floor((360 - math.Mod(degrees, 360)) / arc))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// AngleForIndex returns a rotation (radians) that puts the middle of slot idx
// under the pointer. Useful for scripted landings.
func AngleForIndex(idx, n int) float64 {
	arc := 360 / float64(n)
	// 360 - mod(deg+90, 360) = (idx+0.5)*arc
	deg := 360 - (float64(idx)+0.5)*arc - 90
	for deg < 0 {
		deg += 360
	}
	return deg * math.Pi / 180
}
