package app

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kyaoi/swipeview/internal/config"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/ui"
)

// RunFiltered launches the deck with the row filter already applied. It
// fails when no row matches the query.
func RunFiltered(target string, cfg config.Config, query string) error {
	state, err := LoadFilteredState(target, cfg, query)
	if err != nil {
		return err
	}
	return runProgram(state, cfg)
}

// LoadFilteredState is LoadInitialState with an initial filter query.
func LoadFilteredState(target string, cfg config.Config, query string) (ui.State, error) {
	query = strings.TrimSpace(query)
	state, err := LoadInitialState(target, cfg)
	if err != nil {
		return ui.State{}, err
	}
	if query == "" {
		return state, nil
	}
	if len(deck.Filter(state.Rows, query)) == 0 {
		return ui.State{}, errors.Errorf("no row matches %q", query)
	}
	state.Filter = query
	state.HeaderPath = fmt.Sprintf("%s (filter: %s)", state.HeaderPath, query)
	return state, nil
}
