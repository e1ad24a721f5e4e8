package arbiter

import "math"

// Dispatcher is the host's pointer dispatcher. While interception is
// disallowed, ancestors must not take over the pointer trail.
type Dispatcher interface {
	RequestDisallowIntercept(disallow bool)
}

// Interceptor claims the pointer trail for the control on the first move that
// looks like a horizontal swipe.
type Interceptor struct {
	control    SwipeState
	dispatcher Dispatcher

	down       bool
	decided    bool
	disallowed bool
	downX      float64
	downY      float64
}

// NewInterceptor creates an interceptor for a control.
func NewInterceptor(control SwipeState, d Dispatcher) *Interceptor {
	return &Interceptor{control: control, dispatcher: d}
}

// Claimed reports whether the interceptor currently holds the trail.
func (i *Interceptor) Claimed() bool { return i.disallowed }

// PointerDown records where the trail starts.
func (i *Interceptor) PointerDown(x, y float64) {
	i.down = true
	i.decided = false
	i.downX, i.downY = x, y
}

// PointerMove decides ownership on the first move after a press and reports
// whether the control holds the trail.
func (i *Interceptor) PointerMove(x, y float64) bool {
	if !i.down {
		return false
	}
	if !i.decided {
		i.decided = true
		dx, dy := math.Abs(x-i.downX), math.Abs(y-i.downY)
		if i.control.IsSwiping() || dx > dy {
			i.claim()
		}
	} else if !i.disallowed && i.control.IsSwiping() {
		i.claim()
	}
	return i.disallowed
}

// PointerUp releases the trail.
func (i *Interceptor) PointerUp() { i.release() }

// PointerCancel releases the trail.
func (i *Interceptor) PointerCancel() { i.release() }

func (i *Interceptor) claim() {
	i.disallowed = true
	i.dispatcher.RequestDisallowIntercept(true)
}

func (i *Interceptor) release() {
	i.down = false
	i.decided = false
	if !i.disallowed {
		return
	}
	i.disallowed = false
	i.dispatcher.RequestDisallowIntercept(false)
}
