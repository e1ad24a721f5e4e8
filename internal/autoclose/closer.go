// Package autoclose keeps at most one row of a container open: when one
// control starts opening, every other open sibling is closed.
package autoclose

import (
	"github.com/kyaoi/swipeview/internal/log"
	"github.com/kyaoi/swipeview/internal/swipe"
)

// Closer follows the controls of one container.
type Closer struct {
	children []*swipe.Control
	subs     map[*swipe.Control][]swipe.Subscription
	// latest is the child whose opening started last.
	latest *swipe.Control
}

// New creates a Closer with no children.
func New() *Closer {
	return &Closer{subs: make(map[*swipe.Control][]swipe.Subscription)}
}

// Len returns the number of followed children.
func (c *Closer) Len() int { return len(c.children) }

// ChildAdded starts following a control. Adding the same control twice is a
// no-op.
func (c *Closer) ChildAdded(ctl *swipe.Control) {
	if ctl == nil {
		return
	}
	if _, ok := c.subs[ctl]; ok {
		return
	}
	c.children = append(c.children, ctl)
	c.subs[ctl] = []swipe.Subscription{
		ctl.Subscribe(swipe.EventOpening, c.onOpening),
		ctl.Subscribe(swipe.EventOpened, c.onOpened),
		ctl.Subscribe(swipe.EventClosing, c.onClosing),
	}
}

// ChildRemoved stops following a control.
func (c *Closer) ChildRemoved(ctl *swipe.Control) {
	subs, ok := c.subs[ctl]
	if !ok {
		return
	}
	for _, sub := range subs {
		sub.Unsubscribe()
	}
	delete(c.subs, ctl)
	if c.latest == ctl {
		c.latest = nil
	}
	for i, child := range c.children {
		if child == ctl {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
}

// Detach stops following every child.
func (c *Closer) Detach() {
	for _, subs := range c.subs {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
	c.subs = make(map[*swipe.Control][]swipe.Subscription)
	c.children = nil
	c.latest = nil
}

func (c *Closer) onOpening(e swipe.Event) {
	c.latest = e.Source
	for _, child := range append([]*swipe.Control(nil), c.children...) {
		if child == e.Source || child.IsClosed() {
			continue
		}
		if !child.ClosePanel() {
			log.Debugf("sibling %p busy, not closed", child)
		}
	}
}

// onOpened closes a child that finished opening after a sibling started
// opening, so it never stays open next to it.
func (c *Closer) onOpened(e swipe.Event) {
	if c.latest != nil && c.latest != e.Source {
		e.Source.ClosePanel()
	}
}

func (c *Closer) onClosing(e swipe.Event) {
	if c.latest == e.Source {
		c.latest = nil
	}
}
