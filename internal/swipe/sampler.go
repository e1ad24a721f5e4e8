package swipe

import "math"

// Sampler turns raw pointer phases into start / update / end / tap calls on a
// single Callback. Updates carry the cumulative delta from the press point.
type Sampler struct {
	// DeadZone is the distance a pressed pointer must travel before the
	// movement counts as a drag instead of a tap.
	DeadZone float64
	// DisallowSwipe suppresses new drags, for instance while an ancestor
	// container is being scrolled.
	DisallowSwipe bool

	cb Callback

	down       bool
	dragging   bool
	suppressed bool
	startX     float64
	startY     float64
}

// NewSampler creates a sampler feeding cb.
func NewSampler(cb Callback, deadZone float64) *Sampler {
	return &Sampler{cb: cb, DeadZone: deadZone}
}

// Dragging reports whether the current pointer trail became a drag.
func (s *Sampler) Dragging() bool { return s.dragging }

// Press starts a pointer trail. A press while already down is ignored.
func (s *Sampler) Press(x, y float64) {
	if s.down {
		return
	}
	s.down = true
	s.dragging = false
	s.suppressed = false
	s.startX, s.startY = x, y
}

// Move reports the pointer position while pressed.
func (s *Sampler) Move(x, y float64) {
	if !s.down || s.suppressed {
		return
	}
	dx, dy := x-s.startX, y-s.startY
	if !s.dragging {
		if math.Hypot(dx, dy) <= s.DeadZone {
			return
		}
		// A trail that leaves the dead zone vertically belongs to the
		// ancestor list.
		if s.DisallowSwipe || math.Abs(dy) > math.Abs(dx) {
			s.suppressed = true
			return
		}
		s.dragging = true
		s.cb.OnSwipeStarted()
	}
	s.cb.OnSwiping(dx, dy)
}

// Release ends the pointer trail. A trail that never left the dead zone is a
// tap.
func (s *Sampler) Release() {
	if !s.down {
		return
	}
	if !s.dragging && !s.suppressed {
		s.reset()
		s.cb.OnTapped()
		return
	}
	s.finish()
}

// Cancel ends the pointer trail the same way a release does, without a tap.
func (s *Sampler) Cancel() {
	if !s.down {
		return
	}
	s.finish()
}

func (s *Sampler) finish() {
	dragging := s.dragging
	s.reset()
	if dragging {
		s.cb.OnSwipeCompleted()
	}
}

func (s *Sampler) reset() {
	s.down = false
	s.dragging = false
	s.suppressed = false
}

// SetDisallowSwipe sets DisallowSwipe.
func (s *Sampler) SetDisallowSwipe(v bool) { s.DisallowSwipe = v }
