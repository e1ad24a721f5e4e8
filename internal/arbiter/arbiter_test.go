package arbiter

import (
	"testing"

	"github.com/kyaoi/swipeview/internal/swipe"
)

type fakeDispatcher struct {
	requests []bool
}

func (d *fakeDispatcher) RequestDisallowIntercept(v bool) {
	d.requests = append(d.requests, v)
}

type swipeFlag bool

func (s *swipeFlag) IsSwiping() bool { return bool(*s) }

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeIntercept, "Intercept": ModeIntercept, " delegate ": ModeDelegate} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("grab"); err == nil {
		t.Fatalf("ParseMode accepted an unknown mode")
	}
}

func TestInterceptorClaimsHorizontalMove(t *testing.T) {
	d := &fakeDispatcher{}
	var flag swipeFlag
	i := NewInterceptor(&flag, d)

	i.PointerDown(10, 10)
	if !i.PointerMove(14, 11) {
		t.Fatalf("horizontal move not claimed")
	}
	i.PointerMove(20, 11)
	i.PointerUp()
	if len(d.requests) != 2 || !d.requests[0] || d.requests[1] {
		t.Fatalf("requests = %v, want [true false]", d.requests)
	}
	if i.Claimed() {
		t.Fatalf("still claimed after up")
	}
}

func TestInterceptorLeavesVerticalMove(t *testing.T) {
	d := &fakeDispatcher{}
	var flag swipeFlag
	i := NewInterceptor(&flag, d)

	i.PointerDown(10, 10)
	if i.PointerMove(11, 15) {
		t.Fatalf("vertical move claimed")
	}
	i.PointerCancel()
	if len(d.requests) != 0 {
		t.Fatalf("requests = %v, want none", d.requests)
	}
}

func TestInterceptorClaimsWhenAlreadySwiping(t *testing.T) {
	d := &fakeDispatcher{}
	flag := swipeFlag(true)
	i := NewInterceptor(&flag, d)

	i.PointerDown(0, 0)
	if !i.PointerMove(0, 5) {
		t.Fatalf("move during a swipe not claimed")
	}
	i.PointerCancel()
	if len(d.requests) != 2 || d.requests[1] {
		t.Fatalf("requests = %v", d.requests)
	}
}

func TestInterceptorIgnoresMoveWithoutDown(t *testing.T) {
	d := &fakeDispatcher{}
	var flag swipeFlag
	i := NewInterceptor(&flag, d)
	if i.PointerMove(5, 0) || len(d.requests) != 0 {
		t.Fatalf("move without down claimed")
	}
}

type node struct {
	parent Node
}

func (n *node) Parent() Node { return n.parent }

type scroller struct {
	node
	scrollEnabled bool
	exclusive     bool
	started       func()
	ended         func()
	watchers      int
}

func (s *scroller) SetScrollEnabled(v bool)  { s.scrollEnabled = v }
func (s *scroller) SetExclusiveTouch(v bool) { s.exclusive = v }
func (s *scroller) WatchDrag(started, ended func()) func() {
	s.started, s.ended = started, ended
	s.watchers++
	return func() {
		s.watchers--
		s.started, s.ended = nil, nil
	}
}

func TestFindScrollContainer(t *testing.T) {
	sc := &scroller{scrollEnabled: true}
	mid := &node{parent: sc}
	leaf := &node{parent: mid}
	if got := FindScrollContainer(leaf); got != sc {
		t.Fatalf("FindScrollContainer = %v, want scroller", got)
	}
	if got := FindScrollContainer(&node{}); got != nil {
		t.Fatalf("FindScrollContainer on orphan = %v", got)
	}
}

func TestDelegateTogglesContainer(t *testing.T) {
	sc := &scroller{scrollEnabled: true}
	view := &node{}
	ctl := swipe.New(swipe.DefaultConfig(), swipe.PanelSet{HasLeft: true}, nil)
	sampler := swipe.NewSampler(ctl, 0)

	d := NewDelegate(view, ctl, sampler)
	d.Attach()
	if d.Resolve() {
		t.Fatalf("resolved before the view was placed")
	}

	view.parent = &node{parent: sc}
	if !d.Resolve() || d.Container() != sc {
		t.Fatalf("container not resolved")
	}

	sampler.Press(0, 0)
	sampler.Move(20, 0)
	if sc.scrollEnabled || !sc.exclusive {
		t.Fatalf("container not locked during swipe: scroll=%v exclusive=%v", sc.scrollEnabled, sc.exclusive)
	}
	sampler.Release()
	if !sc.scrollEnabled || sc.exclusive {
		t.Fatalf("container not released: scroll=%v exclusive=%v", sc.scrollEnabled, sc.exclusive)
	}
}

func TestDelegateContainerDragDisallowsSwipe(t *testing.T) {
	sc := &scroller{scrollEnabled: true}
	view := &node{parent: sc}
	ctl := swipe.New(swipe.DefaultConfig(), swipe.PanelSet{HasLeft: true}, nil)
	sampler := swipe.NewSampler(ctl, 0)

	d := NewDelegate(view, ctl, sampler)
	d.Attach()
	d.Resolve()

	sc.started()
	sampler.Press(0, 0)
	sampler.Move(60, 0)
	sampler.Release()
	if ctl.Offset() != 0 || ctl.State() != swipe.Closed {
		t.Fatalf("swipe ran while the container dragged: offset=%v", ctl.Offset())
	}
	sc.ended()
	sampler.Press(0, 0)
	sampler.Move(60, 0)
	sampler.Release()
	if ctl.State() != swipe.LeftPanelOpened {
		t.Fatalf("state = %v after container drag ended", ctl.State())
	}
}

func TestDelegateDetachReleasesEverything(t *testing.T) {
	sc := &scroller{scrollEnabled: true}
	view := &node{parent: sc}
	ctl := swipe.New(swipe.DefaultConfig(), swipe.PanelSet{HasLeft: true}, nil)
	sampler := swipe.NewSampler(ctl, 0)

	d := NewDelegate(view, ctl, sampler)
	d.Attach()
	d.Resolve()
	sampler.Press(0, 0)
	sampler.Move(20, 0)

	d.Detach()
	if sc.watchers != 0 {
		t.Fatalf("drag watchers left: %d", sc.watchers)
	}
	if !sc.scrollEnabled || sc.exclusive {
		t.Fatalf("container left locked after detach")
	}
	sampler.Release()
	if !sc.scrollEnabled {
		t.Fatalf("detached delegate still drives the container")
	}
}
