package swipe

// Side names one of the auxiliary panels.
type Side int

const (
	None Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// PanelState is the persistent panel state. The zero value is Closed.
type PanelState int

const (
	Closed PanelState = iota
	RightPanelOpened
	LeftPanelOpened
)

func (s PanelState) String() string {
	switch s {
	case RightPanelOpened:
		return "right panel opened"
	case LeftPanelOpened:
		return "left panel opened"
	default:
		return "closed"
	}
}

// PanelSet records which side panels the host supplied content for.
type PanelSet struct {
	HasLeft  bool
	HasRight bool
}

// Has reports whether the side has content.
func (p PanelSet) Has(side Side) bool {
	switch side {
	case Left:
		return p.HasLeft
	case Right:
		return p.HasRight
	default:
		return false
	}
}

// Allows reports whether the action operates on a panel that exists.
func (p PanelSet) Allows(a Action) bool {
	return p.Has(a.Side())
}

// Only returns the single configured side, or None when zero or two sides
// are present.
func (p PanelSet) Only() Side {
	switch {
	case p.HasLeft && !p.HasRight:
		return Left
	case p.HasRight && !p.HasLeft:
		return Right
	default:
		return None
	}
}

func stateFor(side Side) PanelState {
	switch side {
	case Left:
		return LeftPanelOpened
	case Right:
		return RightPanelOpened
	default:
		return Closed
	}
}

func sideOf(offset float64) Side {
	switch {
	case offset > 0:
		return Left
	case offset < 0:
		return Right
	default:
		return None
	}
}
