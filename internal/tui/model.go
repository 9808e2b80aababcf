// Package tui implements the interactive team picker shell: a single-input
// Bubbletea program with a scrollback, a status line, and live reload of the
// hero data file.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mkreps/underlords/internal/config"
	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/logging"
	"github.com/mkreps/underlords/internal/team"
	"github.com/mkreps/underlords/internal/tui/command"
	"github.com/mkreps/underlords/internal/tui/styles"
)

// state is the session state shared across model copies. Bubbletea passes
// the model by value, so everything a command mutates lives behind this
// pointer.
type state struct {
	universe *hero.Universe
	team     *team.Global
	cfg      *config.Config
	logger   *logging.Logger
	dataFile string
}

var _ command.Dependencies = (*state)(nil)

func (s *state) Universe() *hero.Universe { return s.universe }
func (s *state) Team() *team.Global       { return s.team }
func (s *state) SetTeam(g *team.Global)   { s.team = g }
func (s *state) Config() *config.Config   { return s.cfg }
func (s *state) Logger() *logging.Logger  { return s.logger }

// ReloadData re-reads the hero data file and swaps the universe. A working
// team keeps referencing the old universe until the next "new".
func (s *state) ReloadData() error {
	universe, err := hero.Load(s.dataFile, s.cfg.Excluded)
	if err != nil {
		return err
	}
	s.universe = universe
	return nil
}

// entryKind selects the style a scrollback entry renders with.
type entryKind int

const (
	entryEcho entryKind = iota
	entryOutput
	entryError
	entryNotice
)

// entry is one block in the scrollback.
type entry struct {
	kind entryKind
	text string
}

// Model holds the shell UI state.
type Model struct {
	state   *state
	handler *command.Handler

	input      textinput.Model
	scrollback []entry

	// history holds submitted lines; histIdx is the recall cursor and
	// equals len(history) when not browsing.
	history []string
	histIdx int

	width    int
	height   int
	quitting bool
}

// NewModel creates the shell model over the given session state.
func NewModel(st *state) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = styles.Prompt

	return Model{
		state:   st,
		handler: command.New(),
		input:   ti,
	}
}

// push appends one entry to the scrollback.
func (m *Model) push(kind entryKind, text string) {
	m.scrollback = append(m.scrollback, entry{kind: kind, text: text})
}
