package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "frogger.yaml"

// LoadFrogger loads Frogger configuration.
// Search order: customPath -> ~/.frogger/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
//
// Keys missing from a file keep their default values. Errors are only
// reported for customPath; broken files elsewhere fall through to the next
// source.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (FroggerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FroggerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return FroggerConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns the file LoadFrogger would read, or "" when the
// embedded default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// Marshal renders a configuration as YAML.
func Marshal(cfg FroggerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

func parse(data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	// Lists replace the defaults instead of merging into them.
	cfg.Obstacles.Lanes = nil
	cfg.Obstacles.WrapPositions = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, err
	}
	defaults := DefaultFroggerConfig()
	if cfg.Obstacles.Lanes == nil {
		cfg.Obstacles.Lanes = defaults.Obstacles.Lanes
	}
	if cfg.Obstacles.WrapPositions == nil {
		cfg.Obstacles.WrapPositions = defaults.Obstacles.WrapPositions
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.frogger, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger")
}
