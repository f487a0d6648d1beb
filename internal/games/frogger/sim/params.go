// Package sim is the Frogger simulation: lane obstacles sweeping across a
// field, a player crossing it on a fixed grid, collision bookkeeping and the
// playing/game-over lifecycle.
//
// The package is pure: it never reads the clock, never draws and never
// blocks. The host supplies a time delta per tick, forwards normalized input
// and receives draw requests through the Renderer capability.
package sim

// MultiHitPolicy decides how several obstacles hitting the player in the
// same tick are penalized.
type MultiHitPolicy string

const (
	// MultiHitAll applies the life loss and score penalty once per hit,
	// in obstacle order, for as long as the session is not over.
	MultiHitAll MultiHitPolicy = "all"
	// MultiHitOnce applies at most one life loss and penalty per tick.
	// Every hit still records a marker.
	MultiHitOnce MultiHitPolicy = "once"
)

// Params holds every tunable constant of a session.
// Coordinates are field pixels with the origin at the top-left corner.
type Params struct {
	// Field
	FieldWidth float64 // right bound for player columns and obstacle wrap
	StepX      float64 // column pitch
	StepY      float64 // row pitch
	BottomRows int     // player may not reach BottomRows*StepY
	TopGuard   float64 // player may not move above this y
	GoalY      float64 // player y strictly below this is in the goal zone

	// Player
	StartX, StartY   float64
	PlayerW          float64
	PlayerH          float64
	MaxLives         int
	GoalWaitTicks    int // ticks spent in the goal zone before the crossing counts
	GoalPoints       int
	CollisionPenalty int

	// Obstacles
	ObstacleCount int
	Lanes         []float64 // y of each lane, assigned round-robin
	WrapPositions []float64 // x positions an obstacle restarts from
	ObstacleW     float64
	ObstacleH     float64
	SpeedMin      float64 // inclusive
	SpeedMax      float64 // exclusive
	SpeedScale    float64 // pixels per second per speed unit

	MultiHit MultiHitPolicy
}

// DefaultParams returns the classic layout: a 505px wide field of 101x83
// cells, three stone lanes and five bugs.
func DefaultParams() Params {
	return Params{
		FieldWidth: 505,
		StepX:      101,
		StepY:      83,
		BottomRows: 5,
		TopGuard:   -10,
		GoalY:      0,

		StartX:           202,
		StartY:           405,
		PlayerW:          50,
		PlayerH:          72,
		MaxLives:         3,
		GoalWaitTicks:    6,
		GoalPoints:       20,
		CollisionPenalty: 10,

		ObstacleCount: 5,
		Lanes:         []float64{62, 145, 228},
		WrapPositions: []float64{-300, -500, -700},
		ObstacleW:     50,
		ObstacleH:     72,
		SpeedMin:      20,
		SpeedMax:      30,
		SpeedScale:    10,

		MultiHit: MultiHitAll,
	}
}

// BottomBound is the first y the player can never occupy.
func (p Params) BottomBound() float64 {
	return float64(p.BottomRows) * p.StepY
}

// course extracts what obstacles need to advance.
func (p Params) course() Course {
	return Course{
		FieldWidth:    p.FieldWidth,
		WrapPositions: p.WrapPositions,
		SpeedMin:      p.SpeedMin,
		SpeedMax:      p.SpeedMax,
		SpeedScale:    p.SpeedScale,
	}
}
