package swipe

import (
	"math"

	"github.com/pkg/errors"

	"github.com/kyaoi/swipeview/internal/log"
)

// Callback is what the gesture sampler drives.
type Callback interface {
	OnSwipeStarted()
	OnSwiping(deltaX, deltaY float64)
	OnSwipeCompleted()
	OnTapped()
}

type session struct {
	active bool
	origin float64
	resume func()
}

// Control is the gesture-to-state engine of one swipeable row.
type Control struct {
	cfg      Config
	panels   PanelSet
	animator Animator
	list     RefreshList
	width    float64

	offset     float64
	state      PanelState
	action     Action
	swiping    bool
	disablePan bool
	session    session

	events   emitter
	watchers map[uint64]func(bool)
	watchID  uint64
}

var _ Callback = (*Control)(nil)

// New creates a closed control. A nil animator moves instantly.
func New(cfg Config, panels PanelSet, animator Animator) *Control {
	if animator == nil {
		animator = Instant{}
	}
	return &Control{
		cfg:      cfg,
		panels:   panels,
		animator: animator,
	}
}

// Config returns the control configuration.
func (c *Control) Config() Config { return c.cfg }

// SetConfig replaces the configuration. Changing it mid-gesture is undefined.
func (c *Control) SetConfig(cfg Config) { c.cfg = cfg }

// Panels returns the panel presence the control was built with.
func (c *Control) Panels() PanelSet { return c.panels }

// SetPanels updates panel presence, for instance after the host swapped the
// side contents.
func (c *Control) SetPanels(p PanelSet) { c.panels = p }

// SetWidth records the container width reported by the layout host. A
// positive width caps the travel of the center panel; an open panel that now
// reaches past the travel is pulled back to it.
func (c *Control) SetWidth(w float64) {
	c.width = w
	if c.session.active {
		c.session.origin = c.clampToTravel(c.session.origin)
	}
	if !c.disablePan && c.state != Closed {
		c.offset = c.clampToTravel(c.offset)
	}
}

// SetParentList attaches the ancestor list whose pull-to-refresh flag is
// suspended during a swipe. Nil detaches it.
func (c *Control) SetParentList(l RefreshList) { c.list = l }

// State returns the persistent panel state.
func (c *Control) State() PanelState { return c.state }

// IsClosed reports whether no panel is open.
func (c *Control) IsClosed() bool { return c.state == Closed }

// Offset returns the current center panel offset.
func (c *Control) Offset() float64 { return c.offset }

// Action returns the classification of the latest accepted sample.
func (c *Control) Action() Action { return c.action }

// IsSwiping reports whether a horizontal swipe is in progress.
func (c *Control) IsSwiping() bool { return c.swiping }

// Busy reports whether a settle animation is in flight.
func (c *Control) Busy() bool { return c.disablePan }

// LeftVisible reports whether the left panel shows behind the center.
func (c *Control) LeftVisible() bool { return c.panels.HasLeft && c.offset > 0 }

// RightVisible reports whether the right panel shows behind the center.
func (c *Control) RightVisible() bool { return c.panels.HasRight && c.offset < 0 }

// Travel returns the effective maximum travel of the center panel.
func (c *Control) Travel() float64 {
	travel := math.Abs(c.cfg.SwipeOffset)
	if c.width > 0 && c.width < travel {
		travel = c.width
	}
	return travel
}

// threshold is the validation threshold, never beyond the effective travel.
func (c *Control) threshold() float64 {
	return math.Min(math.Abs(c.cfg.ValidationThreshold), c.Travel())
}

// Subscribe registers a lifecycle handler.
func (c *Control) Subscribe(kind EventKind, h Handler) Subscription {
	return c.events.add(kind, h)
}

// WatchSwiping calls fn whenever the is-swiping flag flips. The returned
// function removes the watcher.
func (c *Control) WatchSwiping(fn func(swiping bool)) (cancel func()) {
	if c.watchers == nil {
		c.watchers = make(map[uint64]func(bool))
	}
	c.watchID++
	id := c.watchID
	c.watchers[id] = fn
	return func() { delete(c.watchers, id) }
}

func (c *Control) setSwiping(v bool) {
	if c.swiping == v {
		return
	}
	c.swiping = v
	for _, fn := range c.watchers {
		fn(v)
	}
}

// OnSwipeStarted implements Callback.
func (c *Control) OnSwipeStarted() {
	if c.disablePan {
		log.Debugln("swipe start dropped: settle in flight")
		return
	}
	c.session.active = true
	c.session.origin = c.clampToTravel(c.offset)
	if c.list != nil && c.session.resume == nil {
		c.session.resume = c.list.SuspendPullToRefresh()
	}
}

// OnSwiping implements Callback. The deltas are cumulative from the start of
// the drag.
func (c *Control) OnSwiping(deltaX, deltaY float64) {
	if c.disablePan {
		return
	}
	if !c.session.active {
		log.Debugln("swipe update dropped: no gesture started")
		return
	}
	if IsNoise(deltaX) {
		return
	}
	if !c.swiping && math.Abs(deltaY) > math.Abs(deltaX) {
		return
	}

	c.action = Classify(c.offset, deltaX)
	if c.action == NotSwiping {
		c.setSwiping(false)
		return
	}
	c.setSwiping(true)

	if c.panels.Allows(c.action) {
		c.offset = Bound(deltaX, c.Travel(), c.session.origin, c.panels.HasLeft, c.panels.HasRight)
	}
}

// OnSwipeCompleted implements Callback. A cancelled drag ends here too.
func (c *Control) OnSwipeCompleted() {
	if c.disablePan || !c.session.active {
		return
	}
	c.settle(c.offset, c.action)
}

// OnTapped implements Callback.
func (c *Control) OnTapped() {
	if c.disablePan || c.session.active {
		return
	}
	switch {
	case c.state == Closed && c.cfg.OpenOnTap:
		c.openPanel(c.panels.Only())
	case c.state != Closed && c.cfg.CloseOnTap:
		c.ClosePanel()
	}
}

// openPanel opens a side as if a drag had been released exactly at the
// validation threshold.
func (c *Control) openPanel(side Side) bool {
	if !c.panels.Has(side) || c.disablePan {
		return false
	}
	offset := math.Max(c.threshold(), NoiseThreshold)
	action := OpeningLeftPanel
	if side == Right {
		offset, action = -offset, OpeningRightPanel
	}
	c.settle(offset, action)
	return true
}

// ClosePanel animates the control back to Closed. It returns false when there
// is nothing to do or a settle is already running.
func (c *Control) ClosePanel() bool {
	if c.disablePan {
		return false
	}
	if c.state == Closed && c.offset == 0 && !c.session.active {
		return false
	}
	c.settle(c.offset, ClosingLeftPanel)
	return true
}

func (c *Control) settle(offset float64, action Action) {
	c.disablePan = true
	c.session.active = false

	side := sideOf(offset)
	commit := !action.Closing() &&
		math.Abs(offset) >= c.threshold() &&
		c.panels.Has(side)

	target, final, last := 0.0, Closed, EventClosed
	if commit {
		target, final, last = sign(offset)*c.Travel(), stateFor(side), EventOpened
		c.events.emit(Event{Kind: EventOpening, Source: c})
	} else {
		c.events.emit(Event{Kind: EventClosing, Source: c})
	}

	c.translate(target, func(err error) {
		if err != nil {
			log.Errorf("settle to %v failed: %v", target, err)
		}
		c.offset = c.clampToTravel(target)
		c.state = final
		c.action = NotSwiping
		c.setSwiping(false)
		c.restoreRefresh()
		c.disablePan = false
		c.events.emit(Event{Kind: last, Source: c})
	})
}

func (c *Control) translate(target float64, done func(error)) {
	finished := false
	finish := func(err error) {
		if finished {
			return
		}
		finished = true
		done(err)
	}
	defer func() {
		if r := recover(); r != nil {
			if finished {
				log.Errorf("panic after settle: %v", r)
				return
			}
			finish(errors.Errorf("animator panic: %v", r))
		}
	}()
	c.animator.TranslateTo(c.offset, target, func(x float64) { c.offset = x }, finish)
}

func (c *Control) restoreRefresh() {
	if resume := c.session.resume; resume != nil {
		c.session.resume = nil
		resume()
	}
}

// clampToTravel limits an offset to the current effective travel.
func (c *Control) clampToTravel(offset float64) float64 {
	if travel := c.Travel(); math.Abs(offset) > travel {
		return sign(offset) * travel
	}
	return offset
}
