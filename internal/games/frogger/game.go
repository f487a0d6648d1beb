// Package frogger hosts the frogger simulation on the terminal platform:
// it maps platform actions to player commands, drives the session at the
// runtime tick rate and draws it onto a character screen.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/sim"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "frogger"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// normal; the CLI validates them before getting here.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// Game adapts a sim.Session to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.FroggerConfig
	fixed   bool                  // cfg was given explicitly, skip loading
	pending *config.FroggerConfig // applied at the next restart

	rng     core.Random
	session *sim.Session
	tick    uint64

	paused   bool
	showHelp bool
	tooSmall bool
	layout   layout
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.FroggerConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes the game from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadFrogger(configPath)
		if err != nil {
			cfg = config.DefaultFroggerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFroggerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	g.rng = core.NewRandom(runtime.Seed)
	g.session = sim.NewSession(ParamsFromConfig(g.cfg), g.rng)
	g.tick = 0
	g.paused = false
	g.showHelp = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the field layout for a new terminal size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = newLayout(g.session.Params(), w, h)
	g.tooSmall = !g.layout.fits
}

// Reconfigure stores cfg to be used from the next restart on.
func (g *Game) Reconfigure(cfg config.FroggerConfig) {
	g.pending = &cfg
	g.fixed = true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range input.Sequence() {
		g.apply(a)
	}

	if !g.paused && !g.showHelp && !g.tooSmall {
		g.session.Tick(g.runtime.TickSeconds())
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.drainEvents(),
	}
}

// apply handles one action. While help is displayed the first action only
// dismisses it.
func (g *Game) apply(a core.Action) {
	if g.showHelp {
		g.showHelp = false
		return
	}

	switch a {
	case core.ActionPause:
		if !g.session.IsOver() {
			g.paused = !g.paused
		}
	case core.ActionRestart:
		if g.session.IsOver() {
			g.restart()
		}
	case core.ActionHelp:
		g.session.HandleInput(sim.DirHelp)
		g.showHelp = true
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !g.paused && !g.tooSmall {
			g.session.HandleInput(directionFor(a))
		}
	}
}

// restart begins a new round. A pending configuration replaces the session
// first; otherwise the session keeps its obstacles.
func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.session = sim.NewSession(ParamsFromConfig(g.cfg), g.rng)
		g.Resize(g.runtime.ScreenW, g.runtime.ScreenH)
	}
	g.session.RequestReset()
}

func directionFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionUp:
		return sim.DirUp
	case core.ActionDown:
		return sim.DirDown
	case core.ActionLeft:
		return sim.DirLeft
	case core.ActionRight:
		return sim.DirRight
	default:
		return sim.DirNone
	}
}

func (g *Game) drainEvents() []core.Event {
	events := g.session.DrainEvents()
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, 0, len(events))
	for _, e := range events {
		out = append(out, core.Event{
			Kind:  e.Kind.String(),
			X:     e.X,
			Y:     e.Y,
			Value: e.Value,
		})
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.session.Player()
	return core.GameState{
		Score:    p.Score(),
		Lives:    p.Lives(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
}

// RunStats returns the counters stored with a finished run.
func (g *Game) RunStats() core.RunStats {
	st := g.session.Stats()
	return core.RunStats{
		Ticks:      st.Ticks,
		Crossings:  st.Crossings,
		Collisions: st.Collisions,
	}
}

// Config returns the configuration of the running session.
func (g *Game) Config() config.FroggerConfig {
	return g.cfg
}
