package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/kyaoi/swipeview/internal/config"
	"github.com/kyaoi/swipeview/internal/log"
	"github.com/kyaoi/swipeview/internal/ui"
)

// Run executes the Bubble Tea program for the row deck in target. The host
// calls ui.Init once before the first Run.
func Run(target string, cfg config.Config) error {
	state, err := LoadInitialState(target, cfg)
	if err != nil {
		return err
	}
	return runProgram(state, cfg)
}

func runProgram(state ui.State, cfg config.Config) error {
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Infof("deck %s: %d rows, %s arbitration", state.DeckDir, len(state.Rows), state.Mode)
	model := ui.NewModel(state)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

// setupLogging sends log output to the configured file. Without one,
// logging is discarded since the program owns the terminal.
func setupLogging(cfg config.LogConfig) (func(), error) {
	log.EnableDebug = cfg.Debug
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.File, "swipeview")
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
