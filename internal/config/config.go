// Package config provides YAML-based game configuration loading and
// difficulty presets for the frogger platform.
package config

import (
	"errors"
	"fmt"
)

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Rules     RulesConfig    `yaml:"rules"`
}

// FieldConfig defines the playing field grid, in field pixels.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	StepX      float64 `yaml:"step_x"`
	StepY      float64 `yaml:"step_y"`
	BottomRows int     `yaml:"bottom_rows"` // Player y must stay below bottom_rows * step_y
	TopGuard   float64 `yaml:"top_guard"`
	GoalY      float64 `yaml:"goal_y"`
}

// PlayerConfig defines the player token.
type PlayerConfig struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Lives         int     `yaml:"lives"`
	GoalWaitTicks int     `yaml:"goal_wait_ticks"`
}

// ObstacleConfig defines the bugs crossing the stone lanes.
type ObstacleConfig struct {
	Count         int       `yaml:"count"`
	Lanes         []float64 `yaml:"lanes"`
	WrapPositions []float64 `yaml:"wrap_positions"`
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	MinSpeed      float64   `yaml:"min_speed"`
	MaxSpeed      float64   `yaml:"max_speed"` // Exclusive
	SpeedScale    float64   `yaml:"speed_scale"`
}

// ScoringConfig defines points awarded and taken.
type ScoringConfig struct {
	GoalPoints       int `yaml:"goal_points"`
	CollisionPenalty int `yaml:"collision_penalty"`
}

// RulesConfig holds behaviour switches.
type RulesConfig struct {
	MultiHit string `yaml:"multi_hit"` // "all" or "once"
}

// Validate reports every problem with the configuration at once.
func (c FroggerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.StepX > 0, "field.step_x must be positive, got %v", c.Field.StepX)
	check(c.Field.StepY > 0, "field.step_y must be positive, got %v", c.Field.StepY)
	check(c.Field.BottomRows > 0, "field.bottom_rows must be positive, got %d", c.Field.BottomRows)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Lives >= 1, "player.lives must be at least 1, got %d", c.Player.Lives)
	check(c.Player.GoalWaitTicks >= 0, "player.goal_wait_ticks must not be negative, got %d", c.Player.GoalWaitTicks)

	check(c.Obstacles.Count >= 0, "obstacles.count must not be negative, got %d", c.Obstacles.Count)
	check(len(c.Obstacles.Lanes) > 0, "obstacles.lanes must not be empty")
	check(len(c.Obstacles.WrapPositions) > 0, "obstacles.wrap_positions must not be empty")
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	check(c.Obstacles.MinSpeed < c.Obstacles.MaxSpeed, "obstacles.min_speed (%v) must be below max_speed (%v)", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	check(c.Obstacles.SpeedScale > 0, "obstacles.speed_scale must be positive, got %v", c.Obstacles.SpeedScale)

	check(c.Scoring.GoalPoints >= 0, "scoring.goal_points must not be negative, got %d", c.Scoring.GoalPoints)
	check(c.Scoring.CollisionPenalty >= 0, "scoring.collision_penalty must not be negative, got %d", c.Scoring.CollisionPenalty)

	switch c.Rules.MultiHit {
	case "", MultiHitAll, MultiHitOnce:
	default:
		errs = append(errs, fmt.Errorf("rules.multi_hit must be %q or %q, got %q", MultiHitAll, MultiHitOnce, c.Rules.MultiHit))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid frogger config: %w", err)
	}
	return nil
}

// Multi-hit policy names accepted in rules.multi_hit.
const (
	MultiHitAll  = "all"
	MultiHitOnce = "once"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", name)
	}
}
