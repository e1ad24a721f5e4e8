package swipe

import "math"

// NoiseThreshold is the smallest horizontal delta treated as movement.
// Anything smaller is a leak from a mostly vertical drag.
const NoiseThreshold = 0.005

// Action classifies what the current drag sample is doing to the panels.
type Action int

const (
	NotSwiping Action = iota
	OpeningRightPanel
	OpeningLeftPanel
	ClosingRightPanel
	ClosingLeftPanel
)

func (a Action) String() string {
	switch a {
	case OpeningRightPanel:
		return "opening right panel"
	case OpeningLeftPanel:
		return "opening left panel"
	case ClosingRightPanel:
		return "closing right panel"
	case ClosingLeftPanel:
		return "closing left panel"
	default:
		return "not swiping"
	}
}

// Closing reports whether the action pushes a revealed panel back.
func (a Action) Closing() bool {
	return a == ClosingLeftPanel || a == ClosingRightPanel
}

// Side returns the panel the action operates on.
func (a Action) Side() Side {
	switch a {
	case OpeningLeftPanel, ClosingLeftPanel:
		return Left
	case OpeningRightPanel, ClosingRightPanel:
		return Right
	default:
		return None
	}
}

// Classify maps the center panel offset and the latest cumulative delta to an
// action. The offset sign tells which panel sits behind the center, the delta
// sign whether it is being revealed or covered.
func Classify(currentOffset, deltaX float64) Action {
	switch {
	case deltaX > 0:
		if currentOffset >= 0 {
			return OpeningLeftPanel
		}
		return ClosingRightPanel
	case deltaX < 0:
		if currentOffset <= 0 {
			return OpeningRightPanel
		}
		return ClosingLeftPanel
	default:
		return NotSwiping
	}
}

// IsNoise reports whether a horizontal delta is too small to classify.
func IsNoise(deltaX float64) bool {
	return math.Abs(deltaX) < NoiseThreshold
}
