package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/swipe"
)

const (
	wheelStep       = 3
	scrollIdleAfter = 150 * time.Millisecond
)

type dragWatch struct {
	started func()
	ended   func()
}

// scrollList is the viewport holding the rows. It is the ancestor scroll
// container the rows arbitrate with, and the list whose pull-to-refresh is
// suspended during a swipe.
type scrollList struct {
	vp viewport.Model

	scrollEnabled      bool
	exclusive          bool
	disallowIntercept  bool
	pullToRefresh      bool
	pullToRefreshAllow bool

	hold *swipe.RefreshHold

	dragging  bool
	dragGen   int
	watchID   int
	watchers  map[int]dragWatch
	refreshes int
}

var (
	_ arbiter.ScrollContainer = (*scrollList)(nil)
	_ arbiter.Dispatcher      = (*scrollList)(nil)
	_ swipe.RefreshList       = (*scrollList)(nil)
	_ swipe.RefreshFlag       = (*scrollList)(nil)
)

type scrollIdleMsg struct {
	gen int
}

func newScrollList(pullToRefresh bool) *scrollList {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	l := &scrollList{
		vp:                 vp,
		scrollEnabled:      true,
		pullToRefresh:      pullToRefresh,
		pullToRefreshAllow: pullToRefresh,
		watchers:           make(map[int]dragWatch),
	}
	l.hold = swipe.NewRefreshHold(l)
	return l
}

// Parent implements arbiter.Node. The list is the root of the row tree.
func (l *scrollList) Parent() arbiter.Node { return nil }

func (l *scrollList) SetScrollEnabled(enabled bool) { l.scrollEnabled = enabled }

func (l *scrollList) SetExclusiveTouch(exclusive bool) { l.exclusive = exclusive }

func (l *scrollList) RequestDisallowIntercept(disallow bool) { l.disallowIntercept = disallow }

func (l *scrollList) PullToRefreshEnabled() bool { return l.pullToRefresh }

func (l *scrollList) SetPullToRefreshEnabled(enabled bool) {
	l.pullToRefresh = enabled && l.pullToRefreshAllow
}

// SuspendPullToRefresh implements swipe.RefreshList. Every row of the list
// shares one hold.
func (l *scrollList) SuspendPullToRefresh() func() { return l.hold.SuspendPullToRefresh() }

func (l *scrollList) WatchDrag(started, ended func()) func() {
	l.watchID++
	id := l.watchID
	l.watchers[id] = dragWatch{started: started, ended: ended}
	return func() { delete(l.watchers, id) }
}

// canScroll reports whether the list may move on its own input.
func (l *scrollList) canScroll() bool {
	return l.scrollEnabled && !l.exclusive
}

func (l *scrollList) beginDrag() {
	if l.dragging {
		return
	}
	l.dragging = true
	for _, w := range l.watchers {
		w.started()
	}
}

func (l *scrollList) endDrag() {
	if !l.dragging {
		return
	}
	l.dragging = false
	for _, w := range l.watchers {
		w.ended()
	}
}

// scrollBy moves the list by delta lines as part of a drag. It reports
// whether the list was pulled down past its top, which asks for a refresh.
func (l *scrollList) scrollBy(delta int) (pulled bool) {
	if !l.canScroll() || delta == 0 {
		return false
	}
	l.beginDrag()
	if delta < 0 {
		if l.vp.AtTop() {
			return l.pullToRefresh
		}
		l.vp.ScrollUp(-delta)
		return false
	}
	l.vp.ScrollDown(delta)
	return false
}

// wheel handles one wheel notch. Wheel bursts count as a drag that ends once
// the wheel has been idle for a moment.
func (l *scrollList) wheel(up bool) (pulled bool, cmd tea.Cmd) {
	if !l.canScroll() {
		return false, nil
	}
	delta := wheelStep
	if up {
		delta = -wheelStep
	}
	pulled = l.scrollBy(delta)
	l.dragGen++
	gen := l.dragGen
	return pulled, tea.Tick(scrollIdleAfter, func(time.Time) tea.Msg {
		return scrollIdleMsg{gen: gen}
	})
}

func (l *scrollList) handleIdle(msg scrollIdleMsg) {
	if msg.gen == l.dragGen {
		l.endDrag()
	}
}
