package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/sim"
)

// ParamsFromConfig converts a validated configuration to simulation
// parameters.
func ParamsFromConfig(cfg config.FroggerConfig) sim.Params {
	return sim.Params{
		FieldWidth: cfg.Field.Width,
		StepX:      cfg.Field.StepX,
		StepY:      cfg.Field.StepY,
		BottomRows: cfg.Field.BottomRows,
		TopGuard:   cfg.Field.TopGuard,
		GoalY:      cfg.Field.GoalY,

		StartX:           cfg.Player.StartX,
		StartY:           cfg.Player.StartY,
		PlayerW:          cfg.Player.Width,
		PlayerH:          cfg.Player.Height,
		MaxLives:         cfg.Player.Lives,
		GoalWaitTicks:    cfg.Player.GoalWaitTicks,
		GoalPoints:       cfg.Scoring.GoalPoints,
		CollisionPenalty: cfg.Scoring.CollisionPenalty,

		ObstacleCount: cfg.Obstacles.Count,
		Lanes:         append([]float64(nil), cfg.Obstacles.Lanes...),
		WrapPositions: append([]float64(nil), cfg.Obstacles.WrapPositions...),
		ObstacleW:     cfg.Obstacles.Width,
		ObstacleH:     cfg.Obstacles.Height,
		SpeedMin:      cfg.Obstacles.MinSpeed,
		SpeedMax:      cfg.Obstacles.MaxSpeed,
		SpeedScale:    cfg.Obstacles.SpeedScale,

		MultiHit: sim.MultiHitPolicy(cfg.Rules.MultiHit),
	}
}
