package config

// ApplyFroggerPreset modifies the config based on a difficulty preset.
// Presets are static: nothing ramps up during a round.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Obstacles.MinSpeed = 15
		cfg.Obstacles.MaxSpeed = 25
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Obstacles.MinSpeed = 25
		cfg.Obstacles.MaxSpeed = 35
		cfg.Obstacles.Count = 6
	}
}
