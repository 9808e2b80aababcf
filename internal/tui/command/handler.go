// Package command implements the shell's command set. It is decoupled from
// the TUI model: commands read and mutate state through the Dependencies
// interface and report back with a Result.
package command

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mkreps/underlords/internal/config"
	"github.com/mkreps/underlords/internal/errors"
	"github.com/mkreps/underlords/internal/hero"
	"github.com/mkreps/underlords/internal/logging"
	"github.com/mkreps/underlords/internal/render"
	"github.com/mkreps/underlords/internal/team"
)

// Dependencies is the state a command may touch.
type Dependencies interface {
	// Universe returns the loaded hero data.
	Universe() *hero.Universe

	// Team returns the working team, or nil before "new" has run.
	Team() *team.Global

	// SetTeam replaces the working team.
	SetTeam(*team.Global)

	// Config returns the active configuration.
	Config() *config.Config

	// Logger returns the shell logger.
	Logger() *logging.Logger

	// ReloadData re-reads the hero data file and swaps the universe.
	ReloadData() error
}

// Result is the outcome of one command execution.
type Result struct {
	// Output is appended to the scrollback.
	Output string

	// Err is a user-facing failure. The working team is unchanged when set.
	Err error

	// Quit signals the shell to exit.
	Quit bool
}

// Handler dispatches shell commands by their first word.
type Handler struct {
	commands map[string]commandFunc
}

// commandFunc receives the dependencies and the argument text after the
// command word.
type commandFunc func(deps Dependencies, arg string) Result

// New creates a Handler with all commands registered.
func New() *Handler {
	h := &Handler{
		commands: make(map[string]commandFunc),
	}
	h.registerCommands()
	return h
}

// Execute parses and runs one input line.
func (h *Handler) Execute(line string, deps Dependencies) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	name, rest, _ := strings.Cut(line, " ")
	fn, ok := h.commands[name]
	if !ok {
		return Result{Err: fmt.Errorf("unknown command %q (type help)", name)}
	}
	return fn(deps, strings.TrimSpace(rest))
}

// registerCommands sets up all command mappings.
func (h *Handler) registerCommands() {
	h.commands["new"] = cmdNew
	h.commands["info"] = cmdInfo
	h.commands["hero"] = cmdHero
	h.commands["alliance"] = cmdAlliance
	h.commands["team"] = cmdTeam
	h.commands["overlap"] = cmdOverlap
	h.commands["explore"] = cmdExplore
	h.commands["reload"] = cmdReload

	h.commands["help"] = cmdHelp
	h.commands["?"] = cmdHelp
	h.commands["quit"] = cmdQuit
	h.commands["q"] = cmdQuit
}

var errNoTeam = errors.New("no team initialized; run new first")

// teamLimit reads the roster limit from config, falling back to the default.
func teamLimit(deps Dependencies) []team.Option {
	if cfg := deps.Config(); cfg != nil && cfg.Limit > 0 {
		return []team.Option{team.WithLimit(cfg.Limit)}
	}
	return nil
}

// Command implementations

func cmdNew(deps Dependencies, _ string) Result {
	g := team.NewGlobal(deps.Universe().Alliances(), teamLimit(deps)...)
	deps.SetTeam(g)

	if logger := deps.Logger(); logger != nil {
		logger.Info("new team", "limit", g.Limit())
	}
	return Result{Output: fmt.Sprintf("New team (limit %d).", g.Limit())}
}

func cmdInfo(deps Dependencies, arg string) Result {
	kind, name, ok := strings.Cut(arg, " ")
	if ok {
		name = strings.TrimSpace(name)
		switch kind {
		case "alliance", "a":
			a, err := deps.Universe().Alliance(name)
			if err != nil {
				return Result{Err: err}
			}
			return Result{Output: render.AllianceCard(a)}
		case "hero", "h":
			h, err := deps.Universe().Hero(name)
			if err != nil {
				return Result{Err: err}
			}
			return Result{Output: render.HeroCard(h)}
		}
	}

	g := deps.Team()
	if g == nil {
		return Result{Err: errNoTeam}
	}
	return Result{Output: render.TeamView(g.Team)}
}

func cmdHero(deps Dependencies, arg string) Result {
	if arg == "" {
		return Result{Err: errors.New("expected hero <name>")}
	}
	g := deps.Team()
	if g == nil {
		return Result{Err: errNoTeam}
	}

	h, err := deps.Universe().Hero(arg)
	if err != nil {
		return Result{Err: err}
	}
	if err := g.AddHero(h); err != nil {
		return Result{Err: err}
	}

	if logger := deps.Logger(); logger != nil {
		logger.Info("hero recruited", "hero", h.Name, "team_size", g.Size())
	}
	return Result{Output: render.TeamView(g.Team)}
}

func cmdAlliance(deps Dependencies, arg string) Result {
	g := deps.Team()
	if g == nil {
		return Result{Err: errNoTeam}
	}

	if arg == "" {
		return allianceChoices(deps, g)
	}

	// A trailing integer selects the claim level; otherwise the whole
	// argument is an alliance name to raise one level.
	name := arg
	level := 0
	if fields := strings.Fields(arg); len(fields) >= 2 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			name = strings.Join(fields[:len(fields)-1], " ")
			level = n
		}
	}

	a, err := deps.Universe().Alliance(name)
	if err != nil {
		return Result{Err: err}
	}

	if level > 0 {
		err = g.Add(a, level)
	} else {
		_, err = team.Increment(g.Team, a)
	}
	if err != nil {
		return Result{Err: err}
	}

	if logger := deps.Logger(); logger != nil {
		logger.WithAlliance(a.Name).Info("alliance claimed", "level", g.Alliances().View(a).Level())
	}
	return Result{Output: render.TeamView(g.Team)}
}

// allianceChoices lists every one-step upgrade of the working team, weakest
// first, with the unchanged team as the final block.
func allianceChoices(deps Dependencies, g *team.Global) Result {
	var dropped []string
	skip := func(a *hero.Alliance, err error) {
		dropped = append(dropped, fmt.Sprintf("%s %v", a.Name, err))
		if logger := deps.Logger(); logger != nil {
			logger.Debug("branch dropped", "alliance", a.Name, "error", err)
		}
	}

	variants := slices.Collect(g.Increase(team.Increment, team.WithSkipHandler(skip)))
	render.SortTeams(variants)

	blocks := make([]string, 0, len(variants)+1)
	for _, t := range variants {
		blocks = append(blocks, render.TeamLine(t))
	}
	blocks = append(blocks, render.TeamLine(g.Team))

	out := strings.Join(blocks, "\n\n")
	if len(dropped) > 0 {
		out = strings.Join(dropped, "\n") + "\n" + out
	}
	return Result{Output: out}
}

func cmdTeam(deps Dependencies, _ string) Result {
	g := deps.Team()
	if g == nil {
		return Result{Err: errNoTeam}
	}
	return Result{Output: render.Roster(g.Team)}
}

func cmdOverlap(deps Dependencies, arg string) Result {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return Result{Err: errors.New("expected overlap <alliance> <alliance>")}
	}

	u := deps.Universe()
	a, err := u.Alliance(fields[0])
	if err != nil {
		return Result{Err: err}
	}
	b, err := u.Alliance(fields[1])
	if err != nil {
		return Result{Err: err}
	}

	shared := u.Overlap(a, b)
	if len(shared) == 0 {
		return Result{Output: fmt.Sprintf("%s and %s share no heroes.", a.Name, b.Name)}
	}
	return Result{Output: render.HeroNames(shared)}
}

func cmdExplore(deps Dependencies, arg string) Result {
	cfg := deps.Config()

	top := 0
	if cfg != nil {
		top = cfg.Explore.Top
	}
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Result{Err: fmt.Errorf("expected explore [count], got %q", arg)}
		}
		top = n
	}

	// Exploration never mutates the working team; without one it starts
	// from scratch.
	g := deps.Team()
	if g == nil {
		g = team.NewGlobal(deps.Universe().Alliances(), teamLimit(deps)...)
	}

	skip := func(a *hero.Alliance, err error) {
		if logger := deps.Logger(); logger != nil {
			logger.Debug("branch dropped", "alliance", a.Name, "error", err)
		}
	}

	var results []*team.Team
	if cfg != nil && cfg.Explore.Parallel {
		results = g.ExpandParallel(nil,
			team.WithSkipHandler(skip),
			team.WithMaxWorkers(cfg.Explore.MaxWorkers))
	} else {
		results = slices.Collect(g.RecursiveIncrease(nil, team.WithSkipHandler(skip)))
	}

	if logger := deps.Logger(); logger != nil {
		logger.Info("exploration finished", "compositions", len(results), "top", top)
	}

	render.SortTeams(results)
	if top > 0 && len(results) > top {
		results = results[len(results)-top:]
	}

	blocks := make([]string, len(results))
	for i, t := range results {
		blocks[i] = render.TeamLine(t)
	}
	return Result{Output: strings.Join(blocks, "\n\n")}
}

func cmdReload(deps Dependencies, _ string) Result {
	if err := deps.ReloadData(); err != nil {
		return Result{Err: err}
	}

	u := deps.Universe()
	out := fmt.Sprintf("Reloaded %d heroes, %d alliances.", len(u.Heroes()), len(u.Alliances()))
	if deps.Team() != nil {
		out += " The working team still uses the previous data; run new to rebuild."
	}
	return Result{Output: out}
}

func cmdHelp(_ Dependencies, _ string) Result {
	return Result{Output: helpText}
}

func cmdQuit(deps Dependencies, _ string) Result {
	if logger := deps.Logger(); logger != nil {
		logger.Info("shell session ended")
	}
	return Result{Quit: true}
}

const helpText = `Commands:
  new                      start an empty team
  info                     show the working team
  info hero <name>         show a hero card (alias: info h)
  info alliance <name>     show an alliance card (alias: info a)
  hero <name>              recruit a hero
  alliance                 list one-step upgrades, best last
  alliance <name>          raise an alliance one level
  alliance <name> <level>  claim an alliance level outright
  team                     show the recruited roster by tier
  overlap <a> <b>          show heroes shared by two alliances
  explore [n]              search finished teams, print the best n
  reload                   reload the hero data file
  help                     show this help (alias: ?)
  quit                     exit the shell (alias: q)`
