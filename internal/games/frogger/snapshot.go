package frogger

import "github.com/vovakirdan/tui-frogger/internal/games/frogger/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateHelp        GameStateType = "help"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// ObstacleSnapshot is the position and speed of one obstacle.
type ObstacleSnapshot struct {
	X, Y  float64
	Speed float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	PlayerX   float64
	PlayerY   float64
	Score     int
	Lives     int
	WaitTicks int
	Markers   []sim.Marker
	Obstacles []ObstacleSnapshot
	Stats     sim.Stats
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.IsOver():
		state = StateGameOver
	case g.showHelp:
		state = StateHelp
	case g.paused:
		state = StatePaused
	}

	view := g.session.Player().View()
	obstacles := g.session.Obstacles()
	snap := Snapshot{
		Tick:      g.tick,
		PlayerX:   view.X,
		PlayerY:   view.Y,
		Score:     view.Score,
		Lives:     view.Lives,
		WaitTicks: view.WaitTicks,
		Markers:   g.session.Markers(),
		Obstacles: make([]ObstacleSnapshot, len(obstacles)),
		Stats:     g.session.Stats(),
		State:     state,
	}
	for i, o := range obstacles {
		snap.Obstacles[i] = ObstacleSnapshot{X: o.X, Y: o.Y, Speed: o.Speed}
	}
	return snap
}
