package app

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/kyaoi/swipeview/internal/config"
	"github.com/kyaoi/swipeview/internal/deck"
	"github.com/kyaoi/swipeview/internal/ui"
)

// LoadInitialState analyses the target deck directory and prepares the UI
// state.
func LoadInitialState(target string, cfg config.Config) (ui.State, error) {
	info, err := os.Stat(target)
	if err != nil {
		return ui.State{}, errors.Wrap(err, "stat target")
	}
	if !info.IsDir() {
		return ui.State{}, errors.Wrap(deck.ErrNotDir, target)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ui.State{}, err
	}

	swipeCfg, err := cfg.Control()
	if err != nil {
		return ui.State{}, err
	}

	loader := deck.NewFSLoader(absTarget)
	rows, err := loader.List()
	if err != nil {
		return ui.State{}, err
	}

	return ui.State{
		Rows:           rows,
		HeaderPath:     displayPath(loader.Root()) + "/",
		DeckDir:        loader.Root(),
		Loader:         loader,
		Swipe:          swipeCfg,
		DeadZone:       cfg.Swipe.DeadZone,
		SettleDuration: cfg.Swipe.SettleDuration,
		Mode:           cfg.Mode(),
		PullToRefresh:  cfg.UI.PullToRefresh,
		RowHeight:      cfg.UI.RowHeight,
	}, nil
}

func displayPath(abs string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(abs)
}
