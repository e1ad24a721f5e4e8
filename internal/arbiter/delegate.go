package arbiter

// Node is an element of the host's visual tree.
type Node interface {
	Parent() Node
}

// ScrollContainer is an ancestor that scrolls on its own drags.
type ScrollContainer interface {
	Node
	SetScrollEnabled(enabled bool)
	SetExclusiveTouch(exclusive bool)
	// WatchDrag registers callbacks for the container's own drags. The
	// returned function removes them.
	WatchDrag(started, ended func()) (cancel func())
}

// SwipeSource is a control whose is-swiping flag can be watched.
type SwipeSource interface {
	SwipeState
	WatchSwiping(fn func(swiping bool)) (cancel func())
}

// Gate receives the disallow-swipe flag, usually the gesture sampler.
type Gate interface {
	SetDisallowSwipe(disallow bool)
}

// FindScrollContainer walks up from n and returns the nearest scroll
// container ancestor, or nil.
func FindScrollContainer(n Node) ScrollContainer {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if sc, ok := p.(ScrollContainer); ok {
			return sc
		}
	}
	return nil
}

// Delegate couples a control with its nearest scroll container: the
// container's drags disallow swiping and a swipe disables the container.
type Delegate struct {
	view    Node
	control SwipeSource
	gate    Gate

	container   ScrollContainer
	cancelDrag  func()
	cancelSwipe func()
	locked      bool
}

// NewDelegate creates an unattached delegate.
func NewDelegate(view Node, control SwipeSource, gate Gate) *Delegate {
	return &Delegate{view: view, control: control, gate: gate}
}

// Container returns the resolved scroll container, if any.
func (d *Delegate) Container() ScrollContainer { return d.container }

// Attach starts following the control's swipes. The container itself is
// looked up later by Resolve, once the view has a place in the tree.
func (d *Delegate) Attach() {
	if d.cancelSwipe != nil {
		return
	}
	d.cancelSwipe = d.control.WatchSwiping(d.swipingChanged)
}

// Resolve looks up the scroll container if it is not known yet. Hosts call
// it whenever the view's geometry changes.
func (d *Delegate) Resolve() bool {
	if d.container != nil {
		return true
	}
	sc := FindScrollContainer(d.view)
	if sc == nil {
		return false
	}
	d.container = sc
	d.cancelDrag = sc.WatchDrag(
		func() { d.gate.SetDisallowSwipe(true) },
		func() { d.gate.SetDisallowSwipe(false) },
	)
	if d.control.IsSwiping() {
		d.swipingChanged(true)
	}
	return true
}

// Detach drops every subscription and hands scrolling back to the
// container.
func (d *Delegate) Detach() {
	if d.cancelSwipe != nil {
		d.cancelSwipe()
		d.cancelSwipe = nil
	}
	if d.cancelDrag != nil {
		d.cancelDrag()
		d.cancelDrag = nil
	}
	if d.container != nil && d.locked {
		d.container.SetExclusiveTouch(false)
		d.container.SetScrollEnabled(true)
	}
	d.locked = false
	d.container = nil
	d.gate.SetDisallowSwipe(false)
}

func (d *Delegate) swipingChanged(swiping bool) {
	if d.container == nil && !d.Resolve() {
		return
	}
	d.locked = swiping
	d.container.SetExclusiveTouch(swiping)
	d.container.SetScrollEnabled(!swiping)
}
