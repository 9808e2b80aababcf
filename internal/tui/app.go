package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkreps/underlords/internal/config"
	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/logging"
	"github.com/mkreps/underlords/internal/watch"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	state   *state
}

// New creates the shell application over a loaded universe.
func New(universe *hero.Universe, cfg *config.Config, logger *logging.Logger) *App {
	st := &state{
		universe: universe,
		cfg:      cfg,
		logger:   logger,
		dataFile: cfg.ResolveDataFile(),
	}
	return &App{model: NewModel(st), state: st}
}

// Run starts the shell and blocks until it exits. While it runs the hero
// data file is watched and edits reload the universe; when the watch cannot
// be established the shell still runs, without live reload.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	watcher, err := watch.New(a.state.dataFile, func() {
		a.program.Send(dataChangedMsg{})
	})
	if err != nil {
		if a.state.logger != nil {
			a.state.logger.Warn("data file watch unavailable",
				"file", a.state.dataFile, "error", err)
		}
	} else {
		defer func() { _ = watcher.Close() }()
	}

	if a.state.logger != nil {
		a.state.logger.Info("shell started", "data", a.state.dataFile)
	}

	_, err = a.program.Run()
	return err
}
