// Package arbiter keeps an ancestor scroll container from consuming the same
// pointer trail as a horizontal swipe.
//
// Interceptor fits hosts that route pointer events top-down and let a child
// ask its ancestors not to intercept. Delegate fits hosts where the scroll
// container reports its own drags and exposes scroll switches.
package arbiter

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the arbitration variant a host wires.
type Mode int

const (
	ModeIntercept Mode = iota
	ModeDelegate
)

func (m Mode) String() string {
	if m == ModeDelegate {
		return "delegate"
	}
	return "intercept"
}

// ParseMode parses a configured mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "intercept":
		return ModeIntercept, nil
	case "delegate":
		return ModeDelegate, nil
	default:
		return 0, errors.Errorf("unknown arbitration mode %q", s)
	}
}

// SwipeState exposes the control's is-swiping flag.
type SwipeState interface {
	IsSwiping() bool
}
