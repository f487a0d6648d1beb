package core

import "math/rand"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// TickSeconds returns the simulated time covered by one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable thing that happened during a step, reported to the
// platform for logging and run statistics.
type Event struct {
	Kind  string
	X, Y  float64
	Value int
}

// Event kinds shared by games and the platform.
const (
	EventCollision = "collision"
	EventLifeLost  = "life_lost"
	EventGoal      = "goal"
	EventGameOver  = "game_over"
	EventHelp      = "help"
	EventReset     = "reset"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunStats are the counters of one round, stored with a finished run.
type RunStats struct {
	Ticks      uint64
	Crossings  int
	Collisions int
}

// Random is the randomness source injected into simulations.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a deterministic random source for the given seed.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
