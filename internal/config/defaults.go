package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Field: FieldConfig{
			Width:      505,
			StepX:      101,
			StepY:      83,
			BottomRows: 5,
			TopGuard:   -10,
			GoalY:      0,
		},
		Player: PlayerConfig{
			StartX:        202,
			StartY:        405,
			Width:         50,
			Height:        72,
			Lives:         3,
			GoalWaitTicks: 6,
		},
		Obstacles: ObstacleConfig{
			Count:         5,
			Lanes:         []float64{62, 145, 228},
			WrapPositions: []float64{-300, -500, -700},
			Width:         50,
			Height:        72,
			MinSpeed:      20,
			MaxSpeed:      30,
			SpeedScale:    10,
		},
		Scoring: ScoringConfig{
			GoalPoints:       20,
			CollisionPenalty: 10,
		},
		Rules: RulesConfig{
			MultiHit: MultiHitAll,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultFroggerYAML))
	copy(out, defaultFroggerYAML)
	return out
}
