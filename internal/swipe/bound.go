package swipe

import "math"

// Bound computes the center panel offset for a cumulative drag delta.
//
// The candidate is originOffset+deltaX. Revealing a side that has no panel
// yields 0, otherwise the candidate is clamped to swipeOffset in the drag
// direction.
func Bound(deltaX, swipeOffset, originOffset float64, hasLeft, hasRight bool) float64 {
	candidate := originOffset + deltaX
	if (candidate > 0 && !hasLeft) || (candidate < 0 && !hasRight) {
		return 0
	}
	limit := sign(deltaX) * math.Abs(swipeOffset)
	if math.Abs(candidate) >= math.Abs(limit) {
		return limit
	}
	return candidate
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
