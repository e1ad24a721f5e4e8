package ui

import (
	"time"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/swipe"
)

// RowLoader reloads the rows of a deck.
type RowLoader interface {
	List() ([]deck.Row, error)
}

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Rows       []deck.Row
	HeaderPath string
	DeckDir    string
	Loader     RowLoader
	Filter     string

	Swipe          swipe.Config
	DeadZone       float64
	SettleDuration time.Duration
	Mode           arbiter.Mode
	PullToRefresh  bool
	RowHeight      int
}
