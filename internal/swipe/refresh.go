package swipe

// RefreshFlag is the pull-to-refresh switch of an ancestor list.
type RefreshFlag interface {
	PullToRefreshEnabled() bool
	SetPullToRefreshEnabled(enabled bool)
}

// RefreshList is an ancestor list whose pull-to-refresh stays off while any
// swipe inside it is in progress. Each gesture suspends it once and calls the
// returned resume once when it settles.
type RefreshList interface {
	SuspendPullToRefresh() (resume func())
}

// RefreshHold implements RefreshList on top of a RefreshFlag shared by every
// row of one list. The first suspension snapshots the flag and forces it off;
// the last resume writes the snapshot back.
type RefreshHold struct {
	flag    RefreshFlag
	holders int
	saved   bool
}

var _ RefreshList = (*RefreshHold)(nil)

// NewRefreshHold creates a hold over flag.
func NewRefreshHold(flag RefreshFlag) *RefreshHold {
	return &RefreshHold{flag: flag}
}

// Holders returns the number of gestures currently suspending the flag.
func (h *RefreshHold) Holders() int { return h.holders }

// SuspendPullToRefresh implements RefreshList. Calling resume more than once
// has no further effect.
func (h *RefreshHold) SuspendPullToRefresh() func() {
	if h.holders == 0 {
		h.saved = h.flag.PullToRefreshEnabled()
		h.flag.SetPullToRefreshEnabled(false)
	}
	h.holders++
	resumed := false
	return func() {
		if resumed {
			return
		}
		resumed = true
		h.holders--
		if h.holders == 0 {
			h.flag.SetPullToRefreshEnabled(h.saved)
		}
	}
}
